package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"repolink.dev/repolink/internal/git"
	"repolink.dev/repolink/testhelpers"
)

func TestRemoteExists(t *testing.T) {
	scene := testhelpers.NewScene(t, nil)

	repo, err := git.NewRepository(scene.Dir)
	require.NoError(t, err)

	exists, err := repo.RemoteExists(context.Background(), "origin")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)

	exists, err = repo.RemoteExists(context.Background(), "origin")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestListRemoteBranches(t *testing.T) {
	t.Run("returns empty slice for an empty remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "one", "first")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.NewRepository(scene.Dir)
		require.NoError(t, err)

		branches, err := repo.ListRemoteBranches(context.Background(), "origin")
		require.NoError(t, err, "an empty remote is reachable, not an error")
		require.Empty(t, branches)
	})

	t.Run("lists pushed branches", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "one", "first")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))
		require.NoError(t, scene.Repo.RunGitCommand("branch", "feature"))
		require.NoError(t, scene.Repo.PushBranch("origin", "feature"))

		repo, err := git.NewRepository(scene.Dir)
		require.NoError(t, err)

		branches, err := repo.ListRemoteBranches(context.Background(), "origin")
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"main", "feature"}, branches)
	})

	t.Run("fails for an unreachable remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		require.NoError(t, scene.Repo.RunGitCommand("remote", "add", "origin", "/nonexistent/remote.git"))

		repo, err := git.NewRepository(scene.Dir)
		require.NoError(t, err)

		_, err = repo.ListRemoteBranches(context.Background(), "origin")
		require.Error(t, err)
	})
}

func TestCheckRemoteContent(t *testing.T) {
	t.Run("classifies an empty remote as reachable with no content", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "one", "first")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.NewRepository(scene.Dir)
		require.NoError(t, err)

		res := repo.CheckRemoteContent(context.Background(), "origin")
		require.True(t, res.Ok, res.Message)
		require.False(t, res.Content.HasContent)
		require.Empty(t, res.Content.Branches)
	})

	t.Run("prefers main as the default branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "one", "first")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranchAs("origin", "main", "develop"))
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))

		repo, err := git.NewRepository(scene.Dir)
		require.NoError(t, err)

		res := repo.CheckRemoteContent(context.Background(), "origin")
		require.True(t, res.Ok, res.Message)
		require.True(t, res.Content.HasContent)
		require.Equal(t, "main", res.Content.DefaultBranch)
	})

	t.Run("falls back to master then to the first branch", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "one", "first")
		})

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranchAs("origin", "main", "master"))

		repo, err := git.NewRepository(scene.Dir)
		require.NoError(t, err)

		res := repo.CheckRemoteContent(context.Background(), "origin")
		require.True(t, res.Ok, res.Message)
		require.Equal(t, "master", res.Content.DefaultBranch)
	})

	t.Run("reports an unreachable remote as a failure", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		require.NoError(t, scene.Repo.RunGitCommand("remote", "add", "origin", "/nonexistent/remote.git"))

		repo, err := git.NewRepository(scene.Dir)
		require.NoError(t, err)

		res := repo.CheckRemoteContent(context.Background(), "origin")
		require.False(t, res.Ok)
	})
}
