package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	repolinkerrors "repolink.dev/repolink/internal/errors"
)

// DefaultRemoteName is the remote name used when the caller does not pick one
const DefaultRemoteName = "origin"

const notARepositoryMessage = "the folder is not a git repository yet; initialize it first"

// Repository is a handle to a local folder that is, or is about to become, a
// git repository. The isRepo flag is probed once at construction and flipped
// in place after a successful Init; it never reverts within a process run.
type Repository struct {
	path   string
	isRepo bool
	runner *CommandRunner
}

// NewRepository creates a handle for the given folder.
// The folder must exist; it does not have to be a git repository yet.
func NewRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("folder %q does not exist or is not accessible: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a folder", path)
	}

	return &Repository{
		path:   absPath,
		isRepo: detectRepository(absPath),
		runner: NewCommandRunner(absPath),
	}, nil
}

// detectRepository checks for repository metadata without spawning a process
func detectRepository(path string) bool {
	_, err := gogit.PlainOpen(path)
	return err == nil
}

// Path returns the absolute local path of the folder
func (r *Repository) Path() string {
	return r.path
}

// IsRepository reports whether the folder is a git repository
func (r *Repository) IsRepository() bool {
	return r.isRepo
}

// Init initializes a git repository in the folder. It is idempotent: calling
// it on an existing repository succeeds without running git again.
func (r *Repository) Init(ctx context.Context) Result {
	if r.isRepo {
		return Result{Ok: true, Message: "the folder is already a git repository"}
	}

	res := r.runner.RunResult(ctx, "init")
	if res.Ok {
		r.isRepo = true
	}
	return res
}

// AddRemote adds the named remote pointing at url, or updates its URL when the
// remote already exists. Upsert semantics: it never fails on "already exists".
func (r *Repository) AddRemote(ctx context.Context, url string, name string) Result {
	if !r.isRepo {
		return Result{Ok: false, Message: notARepositoryMessage}
	}
	if name == "" {
		name = DefaultRemoteName
	}

	exists, err := r.RemoteExists(ctx, name)
	if err != nil {
		return Result{Ok: false, Message: fmt.Sprintf("failed to list remotes: %v", err)}
	}
	if exists {
		return r.runner.RunResult(ctx, "remote", "set-url", name, url)
	}
	return r.runner.RunResult(ctx, "remote", "add", name, url)
}

// AddAllFiles stages everything in the folder
func (r *Repository) AddAllFiles(ctx context.Context) Result {
	if !r.isRepo {
		return Result{Ok: false, Message: notARepositoryMessage}
	}
	return r.runner.RunResult(ctx, "add", ".")
}

// Commit records the staged changes. It refuses, without invoking git, when
// nothing is staged or when the git identity is incomplete, and the refusal
// message says what to do about it.
func (r *Repository) Commit(ctx context.Context, message string) Result {
	if !r.isRepo {
		return Result{Ok: false, Message: notARepositoryMessage}
	}

	changes, err := r.DetectChanges(ctx)
	if err != nil {
		return Result{Ok: false, Message: fmt.Sprintf("failed to inspect working tree: %v", err)}
	}
	if !changes.Staged {
		if changes.Unstaged || changes.Untracked {
			return Result{Ok: false, Message: fmt.Sprintf("no staged changes to commit, but the working tree has %s; stage them first with 'git add'", changes.Summary())}
		}
		return Result{Ok: false, Message: "nothing to commit; the working tree is clean and already in sync"}
	}

	identity, err := r.UserIdentity(ctx)
	if err != nil {
		return Result{Ok: false, Message: fmt.Sprintf("failed to read git identity: %v", err)}
	}
	if missing := identity.MissingKeys(); len(missing) > 0 {
		idErr := repolinkerrors.NewIdentityError(missing...)
		return Result{Ok: false, Message: fmt.Sprintf("%v; set them with 'git config %s \"...\"'", idErr, strings.Join(missing, " / git config "))}
	}

	return r.runner.RunResult(ctx, "commit", "-m", message)
}

// Push uploads the branch to the remote, setting the upstream. With force the
// remote history is overwritten unconditionally.
func (r *Repository) Push(ctx context.Context, remote, branch string, force bool) Result {
	if !r.isRepo {
		return Result{Ok: false, Message: notARepositoryMessage}
	}

	args := []string{"push", "-u"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, remote, branch)
	return r.runner.RunResult(ctx, args...)
}

// Status reports the current repository status as git prints it
func (r *Repository) Status(ctx context.Context) Result {
	if !r.isRepo {
		return Result{Ok: false, Message: notARepositoryMessage}
	}
	return r.runner.RunResult(ctx, "status")
}

// LocalBranches returns the names of all local branches
func (r *Repository) LocalBranches() ([]string, error) {
	repo, err := gogit.PlainOpen(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	branches, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return names, nil
}

// DefaultBranch returns the configured init.defaultBranch, or "main" when it
// is not set or git is unavailable.
func (r *Repository) DefaultBranch(ctx context.Context) string {
	branch, err := r.runner.Run(ctx, "config", "--get", "init.defaultBranch")
	if err != nil || branch == "" {
		return "main"
	}
	return branch
}
