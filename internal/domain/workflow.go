// Package domain contains the section wrapping and definition ranking workflows.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mouse-blink/splice/internal/adapter"
	"github.com/mouse-blink/splice/internal/domain/span"
	m "github.com/mouse-blink/splice/internal/model"
)

// WrapArgs select the document for open, close and status.
type WrapArgs struct {
	Document m.Path
	Layout   m.Layout
	// Resources maps logical names to directories relative to the project root.
	Resources map[string]string
	DryRun    bool
	Strict    bool
}

// ExtractArgs select one definition.
type ExtractArgs struct {
	Source   m.Path
	Name     string
	Lookback int
}

// RankArgs configure a rank run.
type RankArgs struct {
	Roots    []m.Path
	Filter   adapter.Filter
	Scorers  []m.ScorerName
	Parallel int
	Top      int
	Lookback int
	// Report, when set, receives the YAML report.
	Report m.Path
}

// ViewArgs select a saved report.
type ViewArgs struct {
	Report m.Path
}

// Workflow defines the operations exposed on the command line. Every
// operation displays its outcome through the UI and returns it.
type Workflow interface {
	Open(args WrapArgs) (m.OpResult, error)
	Close(args WrapArgs) (m.OpResult, error)
	Status(args WrapArgs) ([]m.SectionStatus, error)
	Extract(args ExtractArgs) (m.Span, bool, error)
	Rank(ctx context.Context, args RankArgs) (m.RankReport, error)
	View(args ViewArgs) (m.RankReport, error)
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          adapter.UI
	logger      *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui adapter.UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		logger:      logger,
	}
}

func (w *workflow) Open(args WrapArgs) (m.OpResult, error) {
	wrapper, err := w.wrapper(args)
	if err != nil {
		return m.OpResult{}, err
	}

	result, err := wrapper.Open(args.Document, WrapOptions{DryRun: args.DryRun, Strict: args.Strict})
	if err != nil {
		return m.OpResult{}, err
	}

	w.logger.Info("open finished", "document", args.Document, "count", result.Count, "skipped", result.Skipped())

	return result, w.ui.DisplayOpResult("open", result)
}

func (w *workflow) Close(args WrapArgs) (m.OpResult, error) {
	wrapper, err := w.wrapper(args)
	if err != nil {
		return m.OpResult{}, err
	}

	result, err := wrapper.Close(args.Document, WrapOptions{DryRun: args.DryRun, Strict: args.Strict})
	if err != nil {
		return m.OpResult{}, err
	}

	w.logger.Info("close finished", "document", args.Document, "count", result.Count, "skipped", result.Skipped())

	return result, w.ui.DisplayOpResult("close", result)
}

func (w *workflow) Status(args WrapArgs) ([]m.SectionStatus, error) {
	wrapper, err := w.wrapper(args)
	if err != nil {
		return nil, err
	}

	statuses, err := wrapper.Status(args.Document)
	if err != nil {
		return nil, err
	}

	return statuses, w.ui.DisplayStatus(args.Document, statuses)
}

func (w *workflow) Extract(args ExtractArgs) (m.Span, bool, error) {
	data, err := w.fsAdapter.ReadFile(args.Source)
	if err != nil {
		return m.Span{}, false, fmt.Errorf("failed to read %s: %w", args.Source, err)
	}

	sp, found := span.New(span.WithLookback(lookback(args.Lookback))).Extract(string(data), args.Name)
	if !found {
		w.logger.Debug("definition not found", "file", args.Source, "name", args.Name)
	}

	return sp, found, w.ui.DisplaySpan(args.Name, sp, found)
}

func (w *workflow) Rank(ctx context.Context, args RankArgs) (m.RankReport, error) {
	extractor := span.New(span.WithLookback(lookback(args.Lookback)))
	ranker := NewRanker(w.fsAdapter, extractor, w.logger)

	report, err := ranker.Rank(ctx, RankOptions{
		Roots:    args.Roots,
		Filter:   args.Filter,
		Scorers:  args.Scorers,
		Parallel: args.Parallel,
		Top:      args.Top,
		Progress: w.ui.RankProgress(),
	})
	if err != nil {
		return m.RankReport{}, err
	}

	if args.Report != "" {
		if err := w.reportStore.SaveReport(args.Report, report); err != nil {
			return m.RankReport{}, fmt.Errorf("failed to save report: %w", err)
		}
	}

	return report, w.ui.DisplayRank(report)
}

func (w *workflow) View(args ViewArgs) (m.RankReport, error) {
	report, err := w.reportStore.LoadReport(args.Report)
	if err != nil {
		return m.RankReport{}, fmt.Errorf("failed to load report: %w", err)
	}

	return report, w.ui.DisplayRank(report)
}

// wrapper builds a Wrapper whose resources are rooted at the project that
// contains the document.
func (w *workflow) wrapper(args WrapArgs) (Wrapper, error) {
	if args.Document == "" {
		return nil, fmt.Errorf("no document given")
	}

	root, err := w.fsAdapter.FindProjectRoot(args.Document)
	if err != nil {
		root = m.Path(filepath.Dir(string(args.Document)))
	}

	resolver := adapter.NewResolver(root, args.Resources)

	return NewWrapper(w.fsAdapter, resolver, args.Layout, w.logger), nil
}

func lookback(n int) int {
	if n <= 0 {
		return span.DefaultLookback
	}

	return n
}
