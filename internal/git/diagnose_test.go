package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"repolink.dev/repolink/internal/git"
	"repolink.dev/repolink/testhelpers"
)

func TestDiagnoseRefError(t *testing.T) {
	t.Run("missing remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)

		repo, err := git.NewRepository(scene.Dir)
		require.NoError(t, err)

		d := repo.DiagnoseRefError(context.Background(), "origin", "main")
		require.False(t, d.RemoteExists)
		require.Contains(t, d.Summary(), `remote "origin" does not exist`)
		require.Contains(t, d.Summary(), "git remote add origin")
	})

	t.Run("unreachable remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		require.NoError(t, scene.Repo.RunGitCommand("remote", "add", "origin", "/nonexistent/remote.git"))

		repo, err := git.NewRepository(scene.Dir)
		require.NoError(t, err)

		d := repo.DiagnoseRefError(context.Background(), "origin", "main")
		require.True(t, d.RemoteExists)
		require.False(t, d.RemoteEmpty)
		require.Contains(t, d.Summary(), "could not be reached")
	})

	t.Run("empty remote", func(t *testing.T) {
		scene := testhelpers.NewScene(t, nil)
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		repo, err := git.NewRepository(scene.Dir)
		require.NoError(t, err)

		d := repo.DiagnoseRefError(context.Background(), "origin", "main")
		require.True(t, d.RemoteExists)
		require.True(t, d.RemoteEmpty)
		require.Contains(t, d.Summary(), "push first to initialize")
	})

	t.Run("suggests the main/master twin", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "one", "first")
		})
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranchAs("origin", "main", "master"))

		repo, err := git.NewRepository(scene.Dir)
		require.NoError(t, err)

		d := repo.DiagnoseRefError(context.Background(), "origin", "main")
		require.Equal(t, "master", d.AlternativeBranch)
		require.Contains(t, d.Summary(), `use branch "master" instead`)
	})

	t.Run("lists branches when no twin exists", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "one", "first")
		})
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranchAs("origin", "main", "develop"))

		repo, err := git.NewRepository(scene.Dir)
		require.NoError(t, err)

		d := repo.DiagnoseRefError(context.Background(), "origin", "release")
		require.Equal(t, "develop", d.AlternativeBranch, "first remote branch is the fallback suggestion")
	})

	t.Run("branch present falls through to a retry hint", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("a.txt", "one", "first")
		})
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))

		repo, err := git.NewRepository(scene.Dir)
		require.NoError(t, err)

		d := repo.DiagnoseRefError(context.Background(), "origin", "main")
		require.Empty(t, d.AlternativeBranch)
		require.Contains(t, d.Summary(), "still failed")
	})
}
