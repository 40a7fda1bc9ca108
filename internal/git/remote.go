package git

import (
	"context"
	"fmt"
	"strings"
)

const remoteHeadsPrefix = "refs/heads/"

// RemoteExists reports whether the named remote is configured
func (r *Repository) RemoteExists(ctx context.Context, name string) (bool, error) {
	remotes, err := r.runner.RunLines(ctx, "remote")
	if err != nil {
		return false, fmt.Errorf("failed to list remotes: %w", err)
	}
	for _, remote := range remotes {
		if strings.TrimSpace(remote) == name {
			return true, nil
		}
	}
	return false, nil
}

// RemoteURL returns the URL the named remote points at
func (r *Repository) RemoteURL(ctx context.Context, name string) (string, error) {
	url, err := r.runner.Run(ctx, "remote", "get-url", name)
	if err != nil {
		return "", fmt.Errorf("failed to get URL of remote %q: %w", name, err)
	}
	return url, nil
}

// ListRemoteBranches lists the branch names present on the remote.
// A reachable remote with zero branches returns an empty slice and no error;
// an unreachable remote (non-zero exit) returns the error. This distinction
// is what separates "remote is empty" from "remote is down".
func (r *Repository) ListRemoteBranches(ctx context.Context, remote string) ([]string, error) {
	output, err := r.runner.Run(ctx, "ls-remote", "--heads", remote)
	if err != nil {
		return nil, err
	}
	return parseRemoteHeads(output), nil
}

// parseRemoteHeads extracts branch names from ls-remote --heads output.
// Lines that do not carry a refs/heads/ marker (blank lines, echoed command
// text) are skipped.
func parseRemoteHeads(output string) []string {
	branches := []string{}
	for _, line := range strings.Split(output, "\n") {
		idx := strings.Index(line, remoteHeadsPrefix)
		if idx < 0 {
			continue
		}
		name := strings.TrimSpace(line[idx+len(remoteHeadsPrefix):])
		if name != "" {
			branches = append(branches, name)
		}
	}
	return branches
}

// CheckRemoteContent probes whether the remote already holds history and which
// branch should be treated as its default. Preference order: main, then
// master, then the first branch the remote reports.
func (r *Repository) CheckRemoteContent(ctx context.Context, remote string) RemoteContentResult {
	if !r.isRepo {
		return RemoteContentResult{Result: Result{Ok: false, Message: notARepositoryMessage}}
	}

	branches, err := r.ListRemoteBranches(ctx, remote)
	if err != nil {
		return RemoteContentResult{Result: Result{Ok: false, Message: fmt.Sprintf("could not reach remote %q: %v", remote, err)}}
	}

	if len(branches) == 0 {
		return RemoteContentResult{
			Result:  Result{Ok: true, Message: fmt.Sprintf("remote %q exists but has no branches yet", remote)},
			Content: RemoteContent{HasContent: false, Branches: []string{}},
		}
	}

	defaultBranch := pickDefaultBranch(branches)
	return RemoteContentResult{
		Result: Result{Ok: true, Message: fmt.Sprintf("remote %q has %d branch(es), default %q", remote, len(branches), defaultBranch)},
		Content: RemoteContent{
			HasContent:    true,
			Branches:      branches,
			DefaultBranch: defaultBranch,
		},
	}
}

func pickDefaultBranch(branches []string) string {
	for _, preferred := range []string{"main", "master"} {
		for _, branch := range branches {
			if branch == preferred {
				return preferred
			}
		}
	}
	if len(branches) > 0 {
		return branches[0]
	}
	return ""
}
