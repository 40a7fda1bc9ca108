package git

import (
	"path/filepath"
	"strings"
)

// FormatGitURL normalizes a user-supplied repository URL: trims whitespace,
// ensures a .git suffix, and ensures an https:// or git@ prefix.
func FormatGitURL(url string) string {
	url = strings.TrimSpace(url)

	// Local paths and explicit file URLs are valid remotes as-is.
	if strings.HasPrefix(url, "/") || strings.HasPrefix(url, "file://") || strings.HasPrefix(url, ".") {
		return url
	}

	if strings.HasSuffix(url, "/") {
		url = strings.TrimSuffix(url, "/") + ".git"
	} else if !strings.HasSuffix(url, ".git") {
		url += ".git"
	}

	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "git@") {
		if strings.Contains(url, "@") && strings.Contains(url, ":") {
			// Looks like an SSH address without the git@ prefix
			url = "git@" + url
		} else {
			url = "https://" + url
		}
	}

	return url
}

// RepoNameFromPath derives a repository name from a folder path
func RepoNameFromPath(path string) string {
	return filepath.Base(path)
}
