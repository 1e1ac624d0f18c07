package cmd

import (
	"github.com/spf13/cobra"
)

// statusCmd represents the status command.
var statusCmd = newStatusCmd()

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "List the sections of the document",
		Long:  "Status lists every section of the document, inline or extracted, and flags stubs whose artifact is missing.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := workflow.Status(wrapArgs(false, false))
			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
