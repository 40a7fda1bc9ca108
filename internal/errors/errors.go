// Package errors provides sentinel errors and custom error types for the repolink application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the target folder is not a git repository yet
	ErrNotARepository = errors.New("not a git repository")

	// ErrRemoteNotFound indicates that a named remote is not configured
	ErrRemoteNotFound = errors.New("remote not found")

	// ErrRemoteUnreachable indicates that a remote exists but could not be contacted
	ErrRemoteUnreachable = errors.New("remote unreachable")

	// ErrRemoteEmpty indicates that a remote exists but has no branches yet
	ErrRemoteEmpty = errors.New("remote is empty")

	// ErrNothingToCommit indicates that there are no staged changes to commit
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrIdentityMissing indicates that git user.name and/or user.email are not configured
	ErrIdentityMissing = errors.New("git identity not configured")
)

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// IdentityError reports which git identity keys are missing
type IdentityError struct {
	MissingKeys []string
}

func (e *IdentityError) Error() string {
	return fmt.Sprintf("git identity not configured: missing %s", strings.Join(e.MissingKeys, ", "))
}

// Is returns true if the target error is ErrIdentityMissing
func (e *IdentityError) Is(target error) bool {
	return target == ErrIdentityMissing
}

// NewIdentityError creates a new IdentityError
func NewIdentityError(missingKeys ...string) *IdentityError {
	return &IdentityError{MissingKeys: missingKeys}
}
