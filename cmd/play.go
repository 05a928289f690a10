package cmd

import (
	"github.com/spf13/cobra"
)

// playCmd represents the play command.
var playCmd = newPlayCmd()

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play interactively in the terminal UI",
		Long:  "Play interactively in the terminal UI, regardless of how stdout is wired.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(playCmd)
}
