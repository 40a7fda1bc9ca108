package git

import (
	"context"
	"fmt"
	"strings"
)

// remoteRefMissing is the failure signature git prints when the requested
// branch does not exist on the remote.
const remoteRefMissing = "couldn't find remote ref"

// Pull fetches and merges the branch from the remote. When the branch is
// missing on the remote it runs a full diagnosis and retries exactly once
// against the suggested alternative (main/master swap, or the first branch
// the remote has); the substitution is named in the returned message. All
// other failures are reported with the diagnosis attached.
func (r *Repository) Pull(ctx context.Context, remote, branch string) Result {
	if !r.isRepo {
		return Result{Ok: false, Message: notARepositoryMessage}
	}

	res := r.runner.RunResult(ctx, "pull", remote, branch)
	if res.Ok || !strings.Contains(res.Message, remoteRefMissing) {
		return res
	}

	diag := r.DiagnoseRefError(ctx, remote, branch)

	if diag.AlternativeBranch != "" {
		retry := r.runner.RunResult(ctx, "pull", remote, diag.AlternativeBranch)
		if retry.Ok {
			retry.Message = fmt.Sprintf("branch %q not found on %s; pulled %q instead\n%s",
				branch, remote, diag.AlternativeBranch, retry.Message)
			return retry
		}
	}

	if diag.RemoteEmpty {
		return Result{Ok: false, Message: fmt.Sprintf("remote %q is empty; push first to initialize it", remote)}
	}

	if len(diag.Branches) > 0 {
		return Result{Ok: false, Message: fmt.Sprintf("branch %q not found on %s; available branches: %s",
			branch, remote, strings.Join(diag.Branches, ", "))}
	}

	return Result{Ok: false, Message: fmt.Sprintf("failed to pull %s/%s\n%s", remote, branch, diag.Summary())}
}
