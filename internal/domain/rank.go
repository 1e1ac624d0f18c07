package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/splice/internal/adapter"
	"github.com/mouse-blink/splice/internal/domain/scorers"
	"github.com/mouse-blink/splice/internal/domain/span"
	m "github.com/mouse-blink/splice/internal/model"
)

// RankOptions configure one rank invocation.
type RankOptions struct {
	Roots  []m.Path
	Filter adapter.Filter
	// Scorers restricts scoring to the named scorers. Empty means all.
	Scorers []m.ScorerName
	// Parallel bounds the number of files ranked at once.
	Parallel int
	// Top keeps only the best Top definitions when positive.
	Top int
	// Progress, when set, is called after each file with the number of files
	// done and the total.
	Progress func(done, total int)
}

// Ranker scores the definitions found under a set of roots.
type Ranker interface {
	Rank(ctx context.Context, opts RankOptions) (m.RankReport, error)
}

type ranker struct {
	fsAdapter adapter.SourceFSAdapter
	extractor *span.Extractor
	logger    *slog.Logger
}

// NewRanker creates a Ranker that locates definitions with extractor.
func NewRanker(fsAdapter adapter.SourceFSAdapter, extractor *span.Extractor, logger *slog.Logger) Ranker {
	if extractor == nil {
		extractor = span.New()
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ranker{fsAdapter: fsAdapter, extractor: extractor, logger: logger}
}

type fileRank struct {
	definitions []m.Definition
	notFound    int
}

func (r *ranker) Rank(ctx context.Context, opts RankOptions) (m.RankReport, error) {
	files, err := r.fsAdapter.Get(opts.Roots, opts.Filter)
	if err != nil {
		return m.RankReport{}, fmt.Errorf("failed to collect sources: %w", err)
	}

	sources := make(map[m.Path]string, len(files))

	for _, file := range files {
		data, err := r.fsAdapter.ReadFile(file)
		if err != nil {
			return m.RankReport{}, fmt.Errorf("failed to read %s: %w", file, err)
		}

		sources[file] = string(data)
	}

	idx, err := scorers.NewCallIndex(sources, scorers.DefaultCallIndexSize)
	if err != nil {
		return m.RankReport{}, err
	}

	selected, err := scorers.Select(idx, opts.Scorers...)
	if err != nil {
		return m.RankReport{}, err
	}

	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	ranks := make([]fileRank, len(files))

	var (
		mu   sync.Mutex
		done int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			ranks[i] = r.rankFile(file, sources[file], selected)

			if opts.Progress != nil {
				mu.Lock()
				done++
				opts.Progress(done, len(files))
				mu.Unlock()
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return m.RankReport{}, err
	}

	report := m.RankReport{Roots: opts.Roots, Files: len(files)}

	for _, fr := range ranks {
		report.Definitions = append(report.Definitions, fr.definitions...)
		report.NotFound += fr.notFound
	}

	SortDefinitions(report.Definitions)

	if opts.Top > 0 && len(report.Definitions) > opts.Top {
		report.Definitions = report.Definitions[:opts.Top]
	}

	return report, nil
}

func (r *ranker) rankFile(file m.Path, source string, selected []scorers.Scorer) fileRank {
	var fr fileRank

	fileRule := fileIgnoreRule(source)
	if fileRule.all {
		return fr
	}

	for _, name := range span.Declarations(source) {
		sp, ok := r.extractor.Extract(source, name)
		if !ok {
			fr.notFound++

			r.logger.Debug("definition not found", "file", file, "name", name)

			continue
		}

		rule := definitionIgnoreRule(source, sp)
		mergeIgnoreRule(&rule, fileRule)

		if rule.all {
			continue
		}

		def := m.Definition{
			File:   file,
			Name:   name,
			Line:   span.Line(source, sp.StartOffset),
			Lines:  strings.Count(sp.Text, "\n") + 1,
			Scores: make(map[m.ScorerName]float64, len(selected)),
		}

		in := scorers.Input{File: file, Name: name, Text: sp.Text}

		for _, s := range selected {
			if rule.ignores(s.Name()) {
				continue
			}

			score := s.Score(in)
			def.Scores[s.Name()] = score
			def.Score += score
		}

		fr.definitions = append(fr.definitions, def)
	}

	return fr
}

// SortDefinitions orders definitions by score descending, then file, then name.
func SortDefinitions(defs []m.Definition) {
	sort.SliceStable(defs, func(i, j int) bool {
		if defs[i].Score != defs[j].Score {
			return defs[i].Score > defs[j].Score
		}

		if defs[i].File != defs[j].File {
			return defs[i].File < defs[j].File
		}

		return defs[i].Name < defs[j].Name
	})
}
