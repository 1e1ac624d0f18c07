// Package cmd provides the root command and CLI setup for splice.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mouse-blink/splice/internal/adapter"
	"github.com/mouse-blink/splice/internal/config"
	"github.com/mouse-blink/splice/internal/controller"
	"github.com/mouse-blink/splice/internal/domain"
	m "github.com/mouse-blink/splice/internal/model"
	"github.com/spf13/cobra"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var ui adapter.UI
var workflow domain.Workflow
var logger *slog.Logger
var logLevel = new(slog.LevelVar)
var cfg = config.Default()

func init() {
	logLevel.Set(slog.LevelWarn)
	logger = config.NewLogger(os.Stderr, logLevel)
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		logger,
	)
}

var configFlag string
var verboseFlag bool
var documentFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "splice",
		Short: "Split a scaffold document into section artifacts and merge them back",
		Long: `Splice manages one large entry document by moving marker-delimited
sections into standalone artifact files and merging them back on demand.

Sections are delimited by comment markers:
  # install begin
  ...
  # install end

  splice open     replace sections with include stubs and write artifacts
  splice close    inline artifacts back into the document
  splice status   list sections and their state
  splice extract  print one function or class definition from a source file
  splice rank     rank definitions across source files by complexity`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig()
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file (default is .splice.yaml in the working directory)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&documentFlag, "document", "d", "", "entry document (overrides the document setting)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func loadConfig() error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	loaded, err := config.NewLoader(wd, configFlag).Load()
	if err != nil {
		return err
	}

	cfg = loaded

	logLevel.Set(config.ParseLevel(cfg.LogLevel))

	if verboseFlag {
		logLevel.Set(slog.LevelDebug)
	}

	logger.Debug("configuration loaded", "document", cfg.Document, "log_level", cfg.LogLevel)

	return nil
}

// wrapArgs builds the arguments shared by open, close and status.
func wrapArgs(dryRun, strict bool) domain.WrapArgs {
	document := documentFlag
	if document == "" {
		document = cfg.Document
	}

	return domain.WrapArgs{
		Document:  m.Path(document),
		Layout:    cfg.Layout.ToModel(),
		Resources: cfg.Resources,
		DryRun:    dryRun,
		Strict:    strict || cfg.Strict,
	}
}
