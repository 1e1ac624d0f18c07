package cmd

import (
	"errors"

	"github.com/mouse-blink/splice/internal/domain"
	m "github.com/mouse-blink/splice/internal/model"
	"github.com/spf13/cobra"
)

var errNoReport = errors.New("no report given and rank.report is not configured")

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [report]",
		Short: "View a previously saved ranking report",
		Long:  "View displays a YAML ranking report written by rank --report. Without an argument the configured rank.report is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			report := cfg.Rank.Report
			if len(args) == 1 {
				report = args[0]
			}

			if report == "" {
				return errNoReport
			}

			_, err := workflow.View(domain.ViewArgs{Report: m.Path(report)})

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
