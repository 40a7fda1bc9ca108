package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"repolink.dev/repolink/internal/git"
)

func TestFormatGitURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"already normalized", "https://github.com/alice/proj.git", "https://github.com/alice/proj.git"},
		{"adds .git suffix", "https://github.com/alice/proj", "https://github.com/alice/proj.git"},
		{"trailing slash", "https://github.com/alice/proj/", "https://github.com/alice/proj.git"},
		{"adds https prefix", "github.com/alice/proj", "https://github.com/alice/proj.git"},
		{"ssh stays ssh", "git@github.com:alice/proj.git", "git@github.com:alice/proj.git"},
		{"bare ssh address gains git@", "github.com:alice/proj@work", "git@github.com:alice/proj@work.git"},
		{"whitespace trimmed", "  https://github.com/alice/proj.git  ", "https://github.com/alice/proj.git"},
		{"absolute path untouched", "/srv/git/proj.git", "/srv/git/proj.git"},
		{"file url untouched", "file:///srv/git/proj.git", "file:///srv/git/proj.git"},
		{"relative path untouched", "../proj.git", "../proj.git"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, git.FormatGitURL(tc.in))
		})
	}
}

func TestRepoNameFromPath(t *testing.T) {
	require.Equal(t, "proj", git.RepoNameFromPath("/home/alice/code/proj"))
	require.Equal(t, "proj", git.RepoNameFromPath("proj"))
}
