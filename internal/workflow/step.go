// Package workflow composes repository operations into ordered step lists and
// executes them with partial-failure handling, conditional step-skipping, and
// progress reporting.
package workflow

import (
	"context"

	"repolink.dev/repolink/internal/git"
)

// ResultKind declares the shape of a step's result. The executor dispatches
// on this tag, never on the step's display name.
type ResultKind int

const (
	// Simple steps produce a plain success/message outcome
	Simple ResultKind = iota
	// ChangeFlag steps additionally report whether local changes exist
	ChangeFlag
	// RemoteInfo steps additionally report remote-content information
	RemoteInfo
)

// Outcome is what a step's operation reports back to the executor.
// HasChanges is meaningful only for ChangeFlag steps, Remote only for
// RemoteInfo steps.
type Outcome struct {
	Ok         bool
	Message    string
	HasChanges bool
	Remote     git.RemoteContent
}

// Step is one named, pre-bound operation in a workflow. Skippable marks steps
// the executor may bypass when a preceding change check finds nothing to do.
type Step struct {
	Name      string
	Kind      ResultKind
	Skippable bool
	Run       func(ctx context.Context) Outcome
}

// simpleStep wraps a Result-returning operation into a Simple step
func simpleStep(name string, run func(ctx context.Context) git.Result) Step {
	return Step{
		Name: name,
		Kind: Simple,
		Run: func(ctx context.Context) Outcome {
			res := run(ctx)
			return Outcome{Ok: res.Ok, Message: res.Message}
		},
	}
}

// skippableStep is a simpleStep the executor may skip after an empty change check
func skippableStep(name string, run func(ctx context.Context) git.Result) Step {
	step := simpleStep(name, run)
	step.Skippable = true
	return step
}

// changeCheckStep wraps a change-detection operation into a ChangeFlag step
func changeCheckStep(name string, run func(ctx context.Context) git.ChangeResult) Step {
	return Step{
		Name: name,
		Kind: ChangeFlag,
		Run: func(ctx context.Context) Outcome {
			res := run(ctx)
			return Outcome{Ok: res.Ok, Message: res.Message, HasChanges: res.HasChanges}
		},
	}
}

// remoteContentStep wraps a remote-content probe into a RemoteInfo step
func remoteContentStep(name string, run func(ctx context.Context) git.RemoteContentResult) Step {
	return Step{
		Name: name,
		Kind: RemoteInfo,
		Run: func(ctx context.Context) Outcome {
			res := run(ctx)
			return Outcome{Ok: res.Ok, Message: res.Message, Remote: res.Content}
		},
	}
}
