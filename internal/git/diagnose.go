package git

import (
	"context"
	"fmt"
	"strings"
)

// Diagnosis explains why a remote-reference operation failed and what to do
// about it. It is purely advisory: the pull retry logic and user-facing error
// reporting consume it, nothing else depends on it.
type Diagnosis struct {
	Causes            []string
	Actions           []string
	AlternativeBranch string
	RemoteEmpty       bool
	RemoteExists      bool
	RemoteURL         string
	Branches          []string
}

// Summary renders the causes and recommended actions as display text
func (d Diagnosis) Summary() string {
	var b strings.Builder
	b.WriteString("possible causes:")
	for _, cause := range d.Causes {
		b.WriteString("\n  - " + cause)
	}
	if len(d.Actions) > 0 {
		b.WriteString("\nrecommended actions:")
		for _, action := range d.Actions {
			b.WriteString("\n  - " + action)
		}
	}
	return b.String()
}

// DiagnoseRefError works out why looking up branch on remote failed.
// It stops at the first conclusive finding: missing remote, unreachable
// remote, empty remote, then missing branch with an alternative suggestion.
func (r *Repository) DiagnoseRefError(ctx context.Context, remote, branch string) Diagnosis {
	var d Diagnosis

	exists, err := r.RemoteExists(ctx, remote)
	if err != nil || !exists {
		d.Causes = append(d.Causes, fmt.Sprintf("remote %q does not exist", remote))
		d.Actions = append(d.Actions, fmt.Sprintf("add it with: git remote add %s <url>", remote))
		return d
	}
	d.RemoteExists = true

	// Best-effort; the URL only feeds error reporting.
	if url, err := r.RemoteURL(ctx, remote); err == nil {
		d.RemoteURL = url
	}

	branches, err := r.ListRemoteBranches(ctx, remote)
	if err != nil {
		d.Causes = append(d.Causes, fmt.Sprintf("remote %q could not be reached (network or authentication problem)", remote))
		d.Actions = append(d.Actions, "check your network connection and credentials")
		return d
	}

	if len(branches) == 0 {
		d.RemoteEmpty = true
		d.Causes = append(d.Causes, fmt.Sprintf("remote %q exists but has no branches yet", remote))
		d.Actions = append(d.Actions, "push first to initialize the remote")
		return d
	}
	d.Branches = branches

	if !containsBranch(branches, branch) {
		d.AlternativeBranch = alternativeBranch(branch, branches)
		d.Causes = append(d.Causes, fmt.Sprintf("branch %q not found on remote %q", branch, remote))
		if d.AlternativeBranch != "" {
			d.Actions = append(d.Actions, fmt.Sprintf("use branch %q instead", d.AlternativeBranch))
		} else {
			d.Actions = append(d.Actions, fmt.Sprintf("use one of: %s", strings.Join(branches, ", ")))
		}
		return d
	}

	// The branch is there yet the ref lookup failed upstream. Rare.
	d.Causes = append(d.Causes, fmt.Sprintf("branch %q exists on remote %q but the ref lookup still failed", branch, remote))
	d.Actions = append(d.Actions, "retry the operation; if it keeps failing, inspect the remote manually")
	return d
}

// alternativeBranch picks the best substitute for a branch that is absent on
// the remote: the main/master twin when available, otherwise the first branch
// the remote reports.
func alternativeBranch(branch string, available []string) string {
	var twin string
	switch branch {
	case "main":
		twin = "master"
	case "master":
		twin = "main"
	}
	if twin != "" && containsBranch(available, twin) {
		return twin
	}
	if len(available) > 0 {
		return available[0]
	}
	return ""
}

func containsBranch(branches []string, name string) bool {
	for _, branch := range branches {
		if branch == name {
			return true
		}
	}
	return false
}
