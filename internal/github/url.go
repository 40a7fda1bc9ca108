package github

import "fmt"

// placeholderOwner stands in for the owner segment when no authenticated
// username is available.
const placeholderOwner = "user"

// BuildRepoURL builds the HTTPS clone URL for a GitHub repository.
// An empty username falls back to a placeholder owner segment.
func BuildRepoURL(username, repoName string) string {
	if username == "" {
		username = placeholderOwner
	}
	return fmt.Sprintf("https://github.com/%s/%s.git", username, repoName)
}
