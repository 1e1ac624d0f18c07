package cmd

import (
	"github.com/spf13/cobra"
)

var openDryRunFlag bool

// openCmd represents the open command.
var openCmd = newOpenCmd()

func newOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Move document sections into artifact files",
		Long: `Open writes every marker-delimited section of the document to its own
artifact file and replaces the section with an include stub. Sections that
already hold an include stub are left alone, so running open twice is safe.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := workflow.Open(wrapArgs(openDryRunFlag, false))
			return err
		},
	}
	cmd.Flags().BoolVarP(&openDryRunFlag, "dry-run", "n", false, "report what would be written without touching any file")

	return cmd
}

func init() {
	rootCmd.AddCommand(openCmd)
}
