package git

import (
	"context"
	"fmt"
	"strings"
)

// HasStagedChanges checks if there are staged changes
func (r *Repository) HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := r.runner.Run(ctx, "diff", "--cached", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUnstagedChanges checks if there are unstaged changes to tracked files
func (r *Repository) HasUnstagedChanges(ctx context.Context) (bool, error) {
	output, err := r.runner.Run(ctx, "diff", "--name-only")
	if err != nil {
		return false, fmt.Errorf("failed to check unstaged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// HasUntrackedFiles checks if there are untracked files
func (r *Repository) HasUntrackedFiles(ctx context.Context) (bool, error) {
	output, err := r.runner.Run(ctx, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return false, fmt.Errorf("failed to check untracked files: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// DetectChanges probes all three change categories in one call
func (r *Repository) DetectChanges(ctx context.Context) (Changes, error) {
	staged, err := r.HasStagedChanges(ctx)
	if err != nil {
		return Changes{}, err
	}
	unstaged, err := r.HasUnstagedChanges(ctx)
	if err != nil {
		return Changes{}, err
	}
	untracked, err := r.HasUntrackedFiles(ctx)
	if err != nil {
		return Changes{}, err
	}
	return Changes{Staged: staged, Unstaged: unstaged, Untracked: untracked}, nil
}

// HasAnyChanges reports whether the working tree differs from the last
// snapshot in any category, with a message naming the non-empty categories.
func (r *Repository) HasAnyChanges(ctx context.Context) ChangeResult {
	if !r.isRepo {
		return ChangeResult{Result: Result{Ok: false, Message: notARepositoryMessage}}
	}

	changes, err := r.DetectChanges(ctx)
	if err != nil {
		return ChangeResult{Result: Result{Ok: false, Message: fmt.Sprintf("failed to inspect working tree: %v", err)}}
	}

	if !changes.Any() {
		return ChangeResult{
			Result:     Result{Ok: true, Message: "no local changes; working tree clean"},
			HasChanges: false,
		}
	}
	return ChangeResult{
		Result:     Result{Ok: true, Message: "local changes found: " + changes.Summary()},
		HasChanges: true,
	}
}
