package workflow_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"repolink.dev/repolink/internal/git"
	"repolink.dev/repolink/internal/workflow"
	"repolink.dev/repolink/testhelpers"
)

func stepNames(steps []workflow.Step) []string {
	names := make([]string, len(steps))
	for i, step := range steps {
		names[i] = step.Name
	}
	return names
}

func isolateGitConfig(t *testing.T) {
	t.Helper()
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv("GIT_CONFIG_SYSTEM", "/dev/null")
}

func TestNewRepositoryWorkflowShape(t *testing.T) {
	isolateGitConfig(t)
	scene := testhelpers.NewScene(t, nil)

	repo, err := git.NewRepository(scene.Dir)
	require.NoError(t, err)

	steps := workflow.NewBuilder(repo).NewRepositoryWorkflow(
		context.Background(), "https://github.com/alice/proj", "Initial commit", "Go")

	require.Equal(t, []string{
		"Initialize git repository",
		"Create .gitignore file",
		"Stage all files",
		"Create initial commit",
		`Add remote "origin"`,
		`Push "main" to remote`,
	}, stepNames(steps))

	for _, step := range steps {
		require.Equal(t, workflow.Simple, step.Kind)
		require.False(t, step.Skippable)
	}
}

func TestExistingRepositoryWorkflowShape(t *testing.T) {
	isolateGitConfig(t)
	scene := testhelpers.NewScene(t, nil)

	repo, err := git.NewRepository(scene.Dir)
	require.NoError(t, err)

	t.Run("pull variant", func(t *testing.T) {
		steps := workflow.NewBuilder(repo).ExistingRepositoryWorkflow(
			context.Background(), "https://github.com/alice/proj", false)

		require.Equal(t, []string{
			"Initialize git repository",
			`Add remote "origin"`,
			"Check remote content",
			`Pull "main" from remote`,
		}, stepNames(steps))
		require.Equal(t, workflow.RemoteInfo, steps[2].Kind)
	})

	t.Run("overwrite variant", func(t *testing.T) {
		steps := workflow.NewBuilder(repo).ExistingRepositoryWorkflow(
			context.Background(), "https://github.com/alice/proj", true)

		require.Equal(t, []string{
			"Initialize git repository",
			`Add remote "origin"`,
			"Check remote content",
			"Check for local changes",
			"Stage all files",
			"Commit local changes",
			`Force-push "main" to remote`,
		}, stepNames(steps))

		require.Equal(t, workflow.ChangeFlag, steps[3].Kind)
		require.True(t, steps[4].Skippable)
		require.True(t, steps[5].Skippable)
		require.False(t, steps[6].Skippable)
	})

	t.Run("remote name override shows up in step names", func(t *testing.T) {
		steps := workflow.NewBuilder(repo).WithRemoteName("upstream").ExistingRepositoryWorkflow(
			context.Background(), "https://github.com/alice/proj", false)
		require.Equal(t, `Add remote "upstream"`, steps[1].Name)
	})
}

func TestNewRepositoryWorkflowEndToEnd(t *testing.T) {
	isolateGitConfig(t)

	scene := testhelpers.NewScene(t, nil)
	require.NoError(t, scene.Repo.CreateFile("hello.txt", "hello"))

	bareDir, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)

	repo, err := git.NewRepository(scene.Dir)
	require.NoError(t, err)

	steps := workflow.NewBuilder(repo).NewRepositoryWorkflow(
		context.Background(), bareDir, "Initial commit", "Go")

	summary := workflow.Execute(context.Background(), steps, nil)
	require.Equal(t, workflow.Completed, summary.State, "%+v", summary.Results)

	branches, err := repo.ListRemoteBranches(context.Background(), "origin")
	require.NoError(t, err)
	require.Equal(t, []string{"main"}, branches)

	_, err = os.Stat(filepath.Join(scene.Dir, ".gitignore"))
	require.NoError(t, err, ".gitignore must be created before staging")

	count, err := scene.Repo.CommitCount()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestExistingRepositoryWorkflowPullEndToEnd(t *testing.T) {
	isolateGitConfig(t)

	seeder := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("shared.txt", "remote content", "seed")
	})
	bareDir, err := seeder.Repo.CreateBareRemote("target")
	require.NoError(t, err)
	require.NoError(t, seeder.Repo.PushBranch("target", "main"))

	puller := testhelpers.NewScene(t, nil)
	repo, err := git.NewRepository(puller.Dir)
	require.NoError(t, err)

	steps := workflow.NewBuilder(repo).ExistingRepositoryWorkflow(
		context.Background(), bareDir, false)

	summary := workflow.Execute(context.Background(), steps, nil)
	require.Equal(t, workflow.Completed, summary.State, "%+v", summary.Results)

	_, err = os.Stat(filepath.Join(puller.Dir, "shared.txt"))
	require.NoError(t, err, "remote history must be pulled in")

	// The remote-content probe's findings survive into the step results.
	require.Contains(t, summary.Results[2].Message, "main")
}

func TestExistingRepositoryWorkflowOverwriteEndToEnd(t *testing.T) {
	isolateGitConfig(t)

	// Seed the remote with history unrelated to the local folder.
	seeder := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("theirs.txt", "remote content", "their commit")
	})
	bareDir, err := seeder.Repo.CreateBareRemote("target")
	require.NoError(t, err)
	require.NoError(t, seeder.Repo.PushBranch("target", "main"))

	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("ours.txt", "local content", "our commit")
	})
	require.NoError(t, scene.Repo.CreateFile("extra.txt", "uncommitted"))

	repo, err := git.NewRepository(scene.Dir)
	require.NoError(t, err)

	steps := workflow.NewBuilder(repo).ExistingRepositoryWorkflow(
		context.Background(), bareDir, true)

	summary := workflow.Execute(context.Background(), steps, nil)
	require.Equal(t, workflow.Completed, summary.State, "%+v", summary.Results)

	bare := &testhelpers.GitRepo{Dir: bareDir}
	subject, err := bare.RunGitCommandAndGetOutput("log", "-1", "--format=%s", "main")
	require.NoError(t, err)
	require.Equal(t, "Sync local folder state", subject, "local history must replace the remote's")
}

func TestExistingRepositoryWorkflowOverwriteSkipsWhenClean(t *testing.T) {
	isolateGitConfig(t)

	scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
		return s.Repo.CreateChangeAndCommit("a.txt", "one", "first")
	})
	bareDir, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)

	repo, err := git.NewRepository(scene.Dir)
	require.NoError(t, err)

	steps := workflow.NewBuilder(repo).ExistingRepositoryWorkflow(
		context.Background(), bareDir, true)

	summary := workflow.Execute(context.Background(), steps, nil)
	require.Equal(t, workflow.Completed, summary.State, "%+v", summary.Results)
	require.Len(t, summary.Results, 7)

	require.True(t, summary.Results[4].Skipped, "stage step skips on a clean tree")
	require.True(t, summary.Results[5].Skipped, "commit step skips on a clean tree")
	require.False(t, summary.Results[6].Skipped, "push always runs")

	branches, err := repo.ListRemoteBranches(context.Background(), "origin")
	require.NoError(t, err)
	require.Equal(t, []string{"main"}, branches)
}
