// Package github resolves the authenticated GitHub identity used to build
// default repository URLs. Authentication itself is delegated to the gh CLI
// or a GITHUB_TOKEN; this package only consumes the resulting token.
package github

import (
	"context"
	"errors"
	"fmt"
	"os"

	gogithub "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// ErrNotAuthenticated indicates that no GitHub token could be resolved
var ErrNotAuthenticated = errors.New("not authenticated with GitHub")

// Identity describes the authenticated GitHub user
type Identity struct {
	Username   string
	Name       string
	Email      string
	ProfileURL string
}

// IdentityProvider supplies the authenticated user, if any
type IdentityProvider interface {
	AuthenticatedUser(ctx context.Context) (*Identity, error)
}

// Client is an IdentityProvider backed by the GitHub REST API
type Client struct {
	api *gogithub.Client
}

// NewClient creates a Client from an explicit token
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{api: gogithub.NewClient(oauth2.NewClient(ctx, ts))}
}

// NewClientFromEnvironment creates a Client using the first token found:
// the GITHUB_TOKEN environment variable, then the gh CLI's stored token.
// Returns ErrNotAuthenticated when neither yields one.
func NewClientFromEnvironment(ctx context.Context) (*Client, error) {
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return NewClient(ctx, token), nil
	}
	if token, err := GhAuthToken(ctx); err == nil && token != "" {
		return NewClient(ctx, token), nil
	}
	return nil, ErrNotAuthenticated
}

// AuthenticatedUser fetches the identity of the token's user
func (c *Client) AuthenticatedUser(ctx context.Context) (*Identity, error) {
	user, _, err := c.api.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch authenticated user: %w", err)
	}
	return &Identity{
		Username:   user.GetLogin(),
		Name:       user.GetName(),
		Email:      user.GetEmail(),
		ProfileURL: user.GetHTMLURL(),
	}, nil
}
