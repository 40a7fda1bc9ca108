package github

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

// ghCommandTimeout bounds gh invocations; they only read local auth state
// or make a single API call.
const ghCommandTimeout = 30 * time.Second

// GhInstalled reports whether the gh CLI is available on the PATH
func GhInstalled() bool {
	_, err := exec.LookPath("gh")
	return err == nil
}

// GhAuthenticated reports whether the gh CLI holds valid credentials
func GhAuthenticated(ctx context.Context) bool {
	if !GhInstalled() {
		return false
	}
	_, err := runGh(ctx, "auth", "status")
	return err == nil
}

// GhAuthToken returns the token the gh CLI is authenticated with
func GhAuthToken(ctx context.Context) (string, error) {
	return runGh(ctx, "auth", "token")
}

func runGh(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ghCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "gh", args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}
