package git

import "strings"

// Result is the two-value outcome of a repository operation: whether it
// succeeded and a human-readable message. Expected git failures are reported
// through Ok=false rather than errors; only bugs in argument construction
// should ever surface as anything else.
type Result struct {
	Ok      bool
	Message string
}

// ChangeResult extends Result with the change-detection flag used by the
// workflow executor to decide whether stage/commit steps can be skipped.
type ChangeResult struct {
	Result
	HasChanges bool
}

// RemoteContent describes what a remote currently holds
type RemoteContent struct {
	HasContent    bool
	Branches      []string
	DefaultBranch string
}

// RemoteContentResult extends Result with remote-content information
type RemoteContentResult struct {
	Result
	Content RemoteContent
}

// Changes reports which of the three local change categories are non-empty
type Changes struct {
	Staged    bool
	Unstaged  bool
	Untracked bool
}

// Any returns true if any change category is non-empty
func (c Changes) Any() bool {
	return c.Staged || c.Unstaged || c.Untracked
}

// Summary lists the non-empty categories, or reports a clean tree
func (c Changes) Summary() string {
	var parts []string
	if c.Staged {
		parts = append(parts, "staged changes")
	}
	if c.Unstaged {
		parts = append(parts, "unstaged changes")
	}
	if c.Untracked {
		parts = append(parts, "untracked files")
	}
	if len(parts) == 0 {
		return "working tree clean"
	}
	return strings.Join(parts, ", ")
}
