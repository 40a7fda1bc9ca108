package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"repolink.dev/repolink/internal/git"
	"repolink.dev/repolink/internal/github"
	"repolink.dev/repolink/internal/tui"
	"repolink.dev/repolink/internal/workflow"
)

// newLinkCmd creates the link command
func newLinkCmd() *cobra.Command {
	var (
		url        string
		message    string
		remoteName string
		template   string
		existing   bool
		overwrite  bool
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "link [folder]",
		Short: "Link a folder to a GitHub repository",
		Long: `Link a folder to a GitHub repository.

By default a new-repository workflow runs: init, .gitignore, stage, commit,
add remote, push. With --existing the folder is attached to a remote that
already exists: its content is probed and either pulled in, or - with
--overwrite - replaced by the local state via force-push.`,
		Args: cobra.MaximumNArgs(1),
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
			if repo.IsRepository() {
				splog.Info("Folder %s is already a git repository.", repo.Path())
			}

			interactive := isInteractive() && !yes

			url, err = resolveRepoURL(ctx, repo, url, interactive, splog)
			if err != nil {
				return err
			}

			if !existing && interactive && !cmd.Flags().Changed("message") {
				prompt := &survey.Input{Message: "Initial commit message:", Default: message}
				if err := survey.AskOne(prompt, &message); err != nil {
					return err
				}
			}

			builder := workflow.NewBuilder(repo).WithRemoteName(remoteName)

			var steps []workflow.Step
			if existing {
				if !overwrite && interactive {
					overwrite, err = confirmOverwrite(ctx, repo, url)
					if err != nil {
						return err
					}
				}
				steps = builder.ExistingRepositoryWorkflow(ctx, url, overwrite)
			} else {
				steps = builder.NewRepositoryWorkflow(ctx, url, message, template)
			}

			summary := executeSteps(ctx, steps, splog)
			printSummary(splog, summary)

			switch summary.State {
			case workflow.Failed:
				failed := summary.FailedStep()
				return fmt.Errorf("workflow stopped: %s failed", failed.Name)
			case workflow.Cancelled:
				return fmt.Errorf("workflow cancelled")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "repository URL (prompted or derived from your GitHub account when omitted)")
	cmd.Flags().StringVarP(&message, "message", "m", "Initial commit", "message for the initial commit")
	cmd.Flags().StringVar(&remoteName, "remote", git.DefaultRemoteName, "name of the remote to create or update")
	cmd.Flags().StringVar(&template, "template", "Go", "gitignore template ("+strings.Join(git.IgnoreTemplateNames(), ", ")+")")
	cmd.Flags().BoolVar(&existing, "existing", false, "attach to a remote repository that already exists")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite the remote's history with this folder's state (with --existing)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "never prompt; take defaults")

	return cmd
}

// resolveRepoURL settles the repository URL: the flag wins, then an
// interactive prompt seeded with a suggestion built from the authenticated
// GitHub username and the folder name, then the bare suggestion itself.
func resolveRepoURL(ctx context.Context, repo *git.Repository, url string, interactive bool, splog *tui.Splog) (string, error) {
	if url != "" {
		return url, nil
	}

	suggested := suggestRepoURL(ctx, repo.Path())
	if !interactive {
		splog.Info("Using repository URL %s", suggested)
		return suggested, nil
	}

	prompt := &survey.Input{
		Message: "Repository URL:",
		Default: suggested,
	}
	if err := survey.AskOne(prompt, &url, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return url, nil
}

// suggestRepoURL builds a default URL from the authenticated GitHub user and
// the folder name. Absence of credentials degrades to a placeholder owner.
func suggestRepoURL(ctx context.Context, folderPath string) string {
	repoName := git.RepoNameFromPath(folderPath)

	client, err := github.NewClientFromEnvironment(ctx)
	if err != nil {
		return github.BuildRepoURL("", repoName)
	}
	identity, err := client.AuthenticatedUser(ctx)
	if err != nil {
		return github.BuildRepoURL("", repoName)
	}
	return github.BuildRepoURL(identity.Username, repoName)
}

// confirmOverwrite probes the remote URL directly and, when it already holds
// branches, asks the user whether to replace its history.
func confirmOverwrite(ctx context.Context, repo *git.Repository, url string) (bool, error) {
	branches, err := repo.ListRemoteBranches(ctx, git.FormatGitURL(url))
	if err != nil || len(branches) == 0 {
		return false, nil
	}

	overwrite := false
	confirm := &survey.Confirm{
		Message: fmt.Sprintf("The remote already has branches (%s). Overwrite its history with this folder's state?", strings.Join(branches, ", ")),
		Default: false,
	}
	if err := survey.AskOne(confirm, &overwrite); err != nil {
		return false, err
	}
	return overwrite, nil
}

// executeSteps runs the workflow with a live progress bar on a terminal, or
// plain log lines otherwise.
func executeSteps(ctx context.Context, steps []workflow.Step, splog *tui.Splog) workflow.Summary {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		ui := tui.NewProgressUI()
		done := make(chan workflow.Summary, 1)

		splog.SetQuiet(true)
		go func() {
			done <- workflow.Execute(ctx, steps, ui.Report)
			ui.Close()
		}()
		_ = ui.Run()
		splog.SetQuiet(false)

		return <-done
	}

	return workflow.Execute(ctx, steps, func(percent int, message string) {
		splog.Info("[%3d%%] %s", percent, message)
	})
}

// printSummary renders the per-step audit trail
func printSummary(splog *tui.Splog, summary workflow.Summary) {
	splog.Newline()
	for _, res := range summary.Results {
		switch {
		case res.Skipped:
			splog.Info("%s %s (%s)", tui.ColorYellow("-"), res.Name, res.Message)
		case res.Ok:
			splog.Info("%s %s", tui.ColorGreen("✓"), res.Name)
		default:
			splog.Error("%s\n%s", res.Name, tui.Dim(res.Message))
		}
	}
	splog.Newline()
}
