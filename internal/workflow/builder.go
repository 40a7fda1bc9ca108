package workflow

import (
	"context"
	"fmt"

	"repolink.dev/repolink/internal/git"
)

// syncCommitMessage is the fixed message used when committing local changes
// before overwriting a remote.
const syncCommitMessage = "Sync local folder state"

// Builder assembles workflows for one repository handle
type Builder struct {
	repo       *git.Repository
	remoteName string
}

// NewBuilder creates a Builder targeting the default remote name
func NewBuilder(repo *git.Repository) *Builder {
	return &Builder{repo: repo, remoteName: git.DefaultRemoteName}
}

// WithRemoteName overrides the remote name used in built workflows
func (b *Builder) WithRemoteName(name string) *Builder {
	if name != "" {
		b.remoteName = name
	}
	return b
}

// NewRepositoryWorkflow builds the linear plan for adopting a folder into a
// brand-new GitHub repository: init, ignore file, stage, commit, remote, push.
func (b *Builder) NewRepositoryWorkflow(ctx context.Context, url, commitMessage, ignoreTemplate string) []Step {
	url = git.FormatGitURL(url)
	branch := b.repo.DefaultBranch(ctx)
	remote := b.remoteName

	return []Step{
		simpleStep("Initialize git repository", func(ctx context.Context) git.Result {
			return b.repo.Init(ctx)
		}),
		simpleStep("Create .gitignore file", func(ctx context.Context) git.Result {
			return b.repo.CreateIgnoreFile(ignoreTemplate)
		}),
		simpleStep("Stage all files", func(ctx context.Context) git.Result {
			return b.repo.AddAllFiles(ctx)
		}),
		simpleStep("Create initial commit", func(ctx context.Context) git.Result {
			return b.repo.Commit(ctx, commitMessage)
		}),
		simpleStep(fmt.Sprintf("Add remote %q", remote), func(ctx context.Context) git.Result {
			return b.repo.AddRemote(ctx, url, remote)
		}),
		simpleStep(fmt.Sprintf("Push %q to remote", branch), func(ctx context.Context) git.Result {
			return b.repo.Push(ctx, remote, branch, false)
		}),
	}
}

// ExistingRepositoryWorkflow builds the plan for attaching a folder to a
// remote that already exists. The overwrite decision is made by the caller
// beforehand, typically from a CheckRemoteContent probe plus a user prompt:
// overwriting commits the local state and force-pushes it, otherwise the
// remote history is pulled in.
func (b *Builder) ExistingRepositoryWorkflow(ctx context.Context, url string, overwrite bool) []Step {
	url = git.FormatGitURL(url)
	branch := b.repo.DefaultBranch(ctx)
	remote := b.remoteName

	steps := []Step{
		simpleStep("Initialize git repository", func(ctx context.Context) git.Result {
			return b.repo.Init(ctx)
		}),
		simpleStep(fmt.Sprintf("Add remote %q", remote), func(ctx context.Context) git.Result {
			return b.repo.AddRemote(ctx, url, remote)
		}),
		remoteContentStep("Check remote content", func(ctx context.Context) git.RemoteContentResult {
			return b.repo.CheckRemoteContent(ctx, remote)
		}),
	}

	if overwrite {
		steps = append(steps,
			changeCheckStep("Check for local changes", func(ctx context.Context) git.ChangeResult {
				return b.repo.HasAnyChanges(ctx)
			}),
			skippableStep("Stage all files", func(ctx context.Context) git.Result {
				return b.repo.AddAllFiles(ctx)
			}),
			skippableStep("Commit local changes", func(ctx context.Context) git.Result {
				return b.repo.Commit(ctx, syncCommitMessage)
			}),
			simpleStep(fmt.Sprintf("Force-push %q to remote", branch), func(ctx context.Context) git.Result {
				return b.repo.Push(ctx, remote, branch, true)
			}),
		)
	} else {
		steps = append(steps,
			simpleStep(fmt.Sprintf("Pull %q from remote", branch), func(ctx context.Context) git.Result {
				return b.repo.Pull(ctx, remote, branch)
			}),
		)
	}

	return steps
}
