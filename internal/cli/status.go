package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"repolink.dev/repolink/internal/git"
	"repolink.dev/repolink/internal/tui"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "status [folder]",
		Short: "Show how a folder relates to git and its remote",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := "."
			if len(args) > 0 {
				folder = args[0]
			}

			ctx := cmd.Context()
			splog := tui.NewSplog()
			defer splog.Close()

			repo, err := git.NewRepository(folder)
			if err != nil {
				return err
			}

			splog.Info("Folder: %s", repo.Path())

			if !repo.IsRepository() {
				splog.Warn("Not a git repository yet. Run 'repolink link %s' to set one up.", folder)
				return nil
			}
			splog.Info("%s Git repository", tui.ColorGreen("✓"))

			if url, err := repo.RemoteURL(ctx, git.DefaultRemoteName); err == nil {
				splog.Info("%s Remote %q -> %s", tui.ColorGreen("✓"), git.DefaultRemoteName, url)
			} else {
				splog.Warn("Remote %q is not configured.", git.DefaultRemoteName)
			}

			if branches, err := repo.LocalBranches(); err == nil && len(branches) > 0 {
				splog.Info("  Local branches: %s", strings.Join(branches, ", "))
			}

			if changes, err := repo.DetectChanges(ctx); err == nil {
				if changes.Any() {
					splog.Info("  Working tree: %s", changes.Summary())
				} else {
					splog.Info("  Working tree: clean")
				}
			}

			identity := repo.CheckUserIdentity(ctx)
			if identity.Ok {
				splog.Info("%s %s", tui.ColorGreen("✓"), identity.Message)
			} else {
				splog.Warn("%s", identity.Message)
			}

			if full {
				splog.Newline()
				status := repo.Status(ctx)
				splog.Info("%s", status.Message)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "also print raw 'git status' output")

	return cmd
}
