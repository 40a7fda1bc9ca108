// Package testhelpers creates throwaway git repositories and bare remotes for
// tests that exercise real git.
package testhelpers

import (
	"os"
	"testing"
)

// Scene is a temporary folder, optionally holding a real git repository,
// cleaned up when the test ends.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for preparing a scene's repository.
type SceneSetup func(*Scene) error

// NewScene creates a temporary directory with an initialized git repository
// (branch main, test identity configured) and runs the optional setup.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "repolink-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create git repo: %v", err)
	}

	scene := &Scene{Dir: tmpDir, Repo: repo}

	if setup != nil {
		if err := setup(scene); err != nil {
			os.RemoveAll(tmpDir)
			t.Fatalf("Setup failed: %v", err)
		}
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// NewFolderScene creates a temporary directory without a git repository,
// for tests that start from a plain folder.
func NewFolderScene(t *testing.T) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "repolink-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return &Scene{Dir: tmpDir}
}
