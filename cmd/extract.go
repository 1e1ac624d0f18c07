package cmd

import (
	"github.com/mouse-blink/splice/internal/domain"
	m "github.com/mouse-blink/splice/internal/model"
	"github.com/spf13/cobra"
)

var extractLookbackFlag int

// extractCmd represents the extract command.
var extractCmd = newExtractCmd()

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <file> <name>",
		Short: "Print a function or class definition with its doc comment",
		Long: `Extract locates the definition of name in file and prints it together
with its preceding doc comment and modifier lines. A definition that cannot
be found is reported, not treated as an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			lookback := extractLookbackFlag
			if lookback == 0 {
				lookback = cfg.Rank.Lookback
			}

			_, _, err := workflow.Extract(domain.ExtractArgs{
				Source:   m.Path(args[0]),
				Name:     args[1],
				Lookback: lookback,
			})

			return err
		},
	}
	cmd.Flags().IntVar(&extractLookbackFlag, "lookback", 0, "bytes searched backwards for a doc comment (default from config)")

	return cmd
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
