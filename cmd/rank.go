package cmd

import (
	"github.com/mouse-blink/splice/internal/adapter"
	"github.com/mouse-blink/splice/internal/domain"
	m "github.com/mouse-blink/splice/internal/model"
	"github.com/spf13/cobra"
)

var rankIncludeFlags []string
var rankExcludeFlags []string
var rankScorerFlags []string
var rankParallelFlag int
var rankTopFlag int
var rankLookbackFlag int
var rankReportFlag string

// rankCmd represents the rank command.
var rankCmd = newRankCmd()

func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank [paths...]",
		Short: "Rank function and class definitions by complexity",
		Long: `Rank discovers every definition in the source files under the given paths
(default: the working directory), scores each one and prints them from the
highest score down.

Scorers: length, nesting, params, branches, docs, callers.
A "splice:ignore" comment above a definition excludes it; "splice:ignore
callers,docs" excludes only the named scorers. The same comment at the top of
a file applies to every definition in it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Rank(cmd.Context(), rankArgs(args))
			return err
		},
	}
	cmd.Flags().StringArrayVarP(&rankIncludeFlags, "include", "i", nil, "only rank files matching glob (can be repeated)")
	cmd.Flags().StringArrayVarP(&rankExcludeFlags, "exclude", "x", nil, "skip files matching glob (can be repeated)")
	cmd.Flags().StringSliceVarP(&rankScorerFlags, "scorer", "s", nil, "scorers to apply (default all)")
	cmd.Flags().IntVarP(&rankParallelFlag, "parallel", "p", 0, "number of files ranked concurrently (default from config)")
	cmd.Flags().IntVarP(&rankTopFlag, "top", "t", 0, "keep only the N highest scores")
	cmd.Flags().IntVar(&rankLookbackFlag, "lookback", 0, "bytes searched backwards for a doc comment (default from config)")
	cmd.Flags().StringVarP(&rankReportFlag, "report", "r", "", "write the ranking to a YAML report")

	return cmd
}

func init() {
	rootCmd.AddCommand(rankCmd)
}

// rankArgs merges flags over configuration. Unset flags keep the configured value.
func rankArgs(args []string) domain.RankArgs {
	roots := parsePaths(args)
	if len(roots) == 0 {
		roots = []m.Path{"."}
	}

	filter := adapter.Filter{Include: cfg.Rank.Include, Exclude: cfg.Rank.Exclude}
	if len(rankIncludeFlags) > 0 {
		filter.Include = rankIncludeFlags
	}

	if len(rankExcludeFlags) > 0 {
		filter.Exclude = append(append([]string{}, filter.Exclude...), rankExcludeFlags...)
	}

	scorerNames := cfg.Rank.ScorerNames()
	if len(rankScorerFlags) > 0 {
		scorerNames = make([]m.ScorerName, 0, len(rankScorerFlags))
		for _, s := range rankScorerFlags {
			scorerNames = append(scorerNames, m.ScorerName(s))
		}
	}

	return domain.RankArgs{
		Roots:    roots,
		Filter:   filter,
		Scorers:  scorerNames,
		Parallel: firstPositive(rankParallelFlag, cfg.Rank.Parallel),
		Top:      firstPositive(rankTopFlag, cfg.Rank.Top),
		Lookback: firstPositive(rankLookbackFlag, cfg.Rank.Lookback),
		Report:   m.Path(firstNonEmpty(rankReportFlag, cfg.Rank.Report)),
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}

	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
