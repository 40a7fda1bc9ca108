package workflow

import (
	"context"
	"fmt"
)

// RunState is the terminal state of a workflow run
type RunState int

const (
	// Completed means every step succeeded or was deliberately skipped
	Completed RunState = iota
	// Failed means a step failed and the run stopped there
	Failed
	// Cancelled means the context was cancelled between steps
	Cancelled
)

// StepResult records how one step ended. Steps after a failure are never
// attempted and have no StepResult at all.
type StepResult struct {
	Name    string
	Ok      bool
	Skipped bool
	Message string
}

// Summary aggregates a run: every result gathered up to the stopping point
// plus the terminal state. Partial results are always available.
type Summary struct {
	State   RunState
	Results []StepResult
}

// FailedStep returns the result of the step the run stopped on, or nil
func (s Summary) FailedStep() *StepResult {
	if s.State != Failed || len(s.Results) == 0 {
		return nil
	}
	return &s.Results[len(s.Results)-1]
}

// ProgressFunc receives progress updates: a 0-100 percentage and a
// human-readable message. It is called from the executor's own goroutine;
// marshaling to a UI-safe context is the caller's concern.
type ProgressFunc func(percent int, message string)

// Execute runs the steps strictly in order. A step reporting failure, or
// panicking, stops the run; the panic is recorded as that step's failure.
// When a ChangeFlag step reports no changes, the contiguous run of Skippable
// steps that follows is marked skipped without being invoked. The progress
// callback fires on every transition and always ends with a 100% terminal
// call.
func Execute(ctx context.Context, steps []Step, progress ProgressFunc) Summary {
	if progress == nil {
		progress = func(int, string) {}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	summary := Summary{State: Completed}
	total := len(steps)
	if total == 0 {
		progress(100, "Nothing to do.")
		return summary
	}

	for i := 0; i < total; i++ {
		if ctx.Err() != nil {
			summary.State = Cancelled
			progress(100, "Workflow cancelled.")
			return summary
		}

		step := steps[i]
		percent := i * 100 / total
		progress(percent, fmt.Sprintf("Running: %s...", step.Name))

		outcome := runStep(ctx, step)

		summary.Results = append(summary.Results, StepResult{
			Name:    step.Name,
			Ok:      outcome.Ok,
			Message: outcome.Message,
		})

		if !outcome.Ok {
			progress(percent, fmt.Sprintf("%s failed: %s", step.Name, outcome.Message))
			summary.State = Failed
			break
		}
		progress(percent, fmt.Sprintf("%s completed: %s", step.Name, outcome.Message))

		// An empty change check makes the adjacent stage/commit steps
		// pointless; skip them instead of attempting an empty commit.
		if step.Kind == ChangeFlag && !outcome.HasChanges {
			for i+1 < total && steps[i+1].Skippable {
				i++
				skipped := steps[i]
				message := "skipped: no local changes"
				summary.Results = append(summary.Results, StepResult{
					Name:    skipped.Name,
					Ok:      true,
					Skipped: true,
					Message: message,
				})
				progress(i*100/total, fmt.Sprintf("%s %s", skipped.Name, message))
			}
		}
	}

	switch summary.State {
	case Failed:
		progress(100, "Workflow stopped after a failed step.")
	default:
		progress(100, "Workflow completed.")
	}
	return summary
}

// runStep invokes a step's operation, converting a panic into a failed
// outcome so a single broken step can never take down the run.
func runStep(ctx context.Context, step Step) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Outcome{Ok: false, Message: fmt.Sprintf("unexpected fault: %v", r)}
		}
	}()
	return step.Run(ctx)
}
