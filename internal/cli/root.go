// Package cli wires the repolink commands: link, status, and doctor.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repolink",
		Short: "Repolink links a local folder to a GitHub repository",
		Long: `Repolink links a local folder to a GitHub repository: it initializes git,
stages and commits your files, attaches the remote, and reconciles local
and remote history - pushing, pulling, or force-pushing as appropriate.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newLinkCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the repolink version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("repolink %s (commit %s, built %s)\n", version, commit, date)
		},
	})

	return rootCmd
}

// isInteractive checks if we're in an interactive terminal
func isInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
