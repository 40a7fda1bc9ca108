package cli

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"repolink.dev/repolink/internal/github"
	"repolink.dev/repolink/internal/tui"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that git and GitHub credentials are ready to use",
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := tui.NewSplog()
			defer splog.Close()

			splog.Info("Running repolink doctor...")
			splog.Newline()

			var warnings []string
			var errors []string

			splog.Info("Environment:")
			warnings, errors = checkEnvironment(cmd.Context(), splog, warnings, errors)

			splog.Newline()
			switch {
			case len(errors) > 0:
				splog.Warn("Doctor found %d error(s) and %d warning(s).", len(errors), len(warnings))
				return fmt.Errorf("doctor found %d error(s)", len(errors))
			case len(warnings) > 0:
				splog.Info("Doctor found %d warning(s). Linking will mostly work.", len(warnings))
			default:
				splog.Info("%s All checks passed.", tui.ColorGreen("✓"))
			}
			return nil
		},
	}
}

// checkEnvironment verifies the external tools repolink depends on
func checkEnvironment(ctx context.Context, splog *tui.Splog, warnings, errors []string) ([]string, []string) {
	if version, err := gitVersion(ctx); err == nil {
		splog.Info("  %s git installed (%s)", tui.ColorGreen("✓"), version)
	} else {
		errors = append(errors, "git is not installed or not on PATH")
		splog.Error("  git is not installed or not on PATH")
	}

	if !github.GhInstalled() {
		warnings = append(warnings, "gh CLI not installed; repository URLs cannot be suggested from your GitHub account")
		splog.Warn("  gh CLI not installed")
		return warnings, errors
	}
	splog.Info("  %s gh CLI installed", tui.ColorGreen("✓"))

	if github.GhAuthenticated(ctx) {
		splog.Info("  %s gh CLI authenticated", tui.ColorGreen("✓"))
	} else {
		warnings = append(warnings, "gh CLI not authenticated; run 'gh auth login'")
		splog.Warn("  gh CLI not authenticated (run 'gh auth login')")
	}

	return warnings, errors
}

func gitVersion(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "git", "--version").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
