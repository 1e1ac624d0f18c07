package cmd

import (
	"github.com/spf13/cobra"
)

var closeDryRunFlag bool
var closeStrictFlag bool

// closeCmd represents the close command.
var closeCmd = newCloseCmd()

func newCloseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close",
		Short: "Inline artifact files back into the document",
		Long: `Close replaces every include stub of the document with the content of its
artifact, re-indenting it to the stub's level, and deletes the consumed
artifacts. Stubs whose artifact is missing are left untouched unless --strict
is given.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := workflow.Close(wrapArgs(closeDryRunFlag, closeStrictFlag))
			return err
		},
	}
	cmd.Flags().BoolVarP(&closeDryRunFlag, "dry-run", "n", false, "report what would be inlined without touching any file")
	cmd.Flags().BoolVar(&closeStrictFlag, "strict", false, "fail when a stub references a missing artifact")

	return cmd
}

func init() {
	rootCmd.AddCommand(closeCmd)
}
