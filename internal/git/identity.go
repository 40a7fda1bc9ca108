package git

import (
	"context"
	"fmt"
	"strings"
)

// UserIdentity holds the configured git author identity
type UserIdentity struct {
	Name  string
	Email string
}

// MissingKeys returns the config keys that still need to be set
func (id UserIdentity) MissingKeys() []string {
	var missing []string
	if id.Name == "" {
		missing = append(missing, "user.name")
	}
	if id.Email == "" {
		missing = append(missing, "user.email")
	}
	return missing
}

// Complete reports whether both name and email are configured
func (id UserIdentity) Complete() bool {
	return id.Name != "" && id.Email != ""
}

// UserIdentity reads the configured user.name and user.email.
// An unset key comes back empty; git exits non-zero for unset keys, which is
// not an error here.
func (r *Repository) UserIdentity(ctx context.Context) (UserIdentity, error) {
	name, _ := r.runner.Run(ctx, "config", "--get", "user.name")
	email, _ := r.runner.Run(ctx, "config", "--get", "user.email")
	return UserIdentity{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}, nil
}

// CheckUserIdentity confirms both identity keys are configured, naming the
// missing ones otherwise.
func (r *Repository) CheckUserIdentity(ctx context.Context) Result {
	identity, err := r.UserIdentity(ctx)
	if err != nil {
		return Result{Ok: false, Message: fmt.Sprintf("failed to read git identity: %v", err)}
	}

	if missing := identity.MissingKeys(); len(missing) > 0 {
		return Result{Ok: false, Message: fmt.Sprintf("git identity incomplete: missing %s", strings.Join(missing, " and "))}
	}
	return Result{Ok: true, Message: fmt.Sprintf("git identity configured: %s <%s>", identity.Name, identity.Email)}
}
