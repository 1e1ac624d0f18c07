package controller

import (
	"bytes"
	"strings"
	"testing"

	m "github.com/mouse-blink/splice/internal/model"
	"github.com/spf13/cobra"
)

func newSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func assertContainsAll(t *testing.T, output string, wants ...string) {
	t.Helper()

	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayOpResult(t *testing.T) {
	ui, buf := newSimpleUI()

	result := m.OpResult{
		Count:     2,
		Message:   "opened 2 artifact(s) for setup.sh, 0 skipped",
		Artifacts: []m.Path{"setup.a.sh", "setup.b.sh"},
	}

	if err := ui.DisplayOpResult("open", result); err != nil {
		t.Fatalf("DisplayOpResult() error = %v", err)
	}

	assertContainsAll(t, buf.String(), result.Message, "  setup.a.sh\n", "  setup.b.sh\n")
}

func TestSimpleUI_DisplayStatus(t *testing.T) {
	ui, buf := newSimpleUI()

	statuses := []m.SectionStatus{
		{QualifiedName: "install", State: m.StateInline, StartLine: 3, Lines: 4},
		{QualifiedName: "config", State: m.StateExtracted, StartLine: 8, Lines: 3, Artifact: "setup.config.sh"},
		{QualifiedName: "gone", State: m.StateOrphaned, StartLine: 12, Lines: 3, Artifact: "setup.gone.sh"},
	}

	if err := ui.DisplayStatus("setup.sh", statuses); err != nil {
		t.Fatalf("DisplayStatus() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"setup.sh",
		"SECTION",
		"install", "inline",
		"config", "extracted", "setup.config.sh",
		"gone", "orphaned",
		"TOTAL 3",
		"1 INLINE",
	)
}

func TestSimpleUI_DisplayStatus_Empty(t *testing.T) {
	ui, buf := newSimpleUI()

	if err := ui.DisplayStatus("setup.sh", nil); err != nil {
		t.Fatalf("DisplayStatus() error = %v", err)
	}

	if got := buf.String(); got != "no sections in setup.sh\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestSimpleUI_DisplaySpan(t *testing.T) {
	ui, buf := newSimpleUI()

	if err := ui.DisplaySpan("a", m.Span{Text: "function a() {}"}, true); err != nil {
		t.Fatalf("DisplaySpan() error = %v", err)
	}

	if err := ui.DisplaySpan("b", m.Span{}, false); err != nil {
		t.Fatalf("DisplaySpan() error = %v", err)
	}

	if got := buf.String(); got != "function a() {}\nb: not found\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestSimpleUI_DisplayRank(t *testing.T) {
	ui, buf := newSimpleUI()

	report := m.RankReport{
		Files:    2,
		NotFound: 1,
		Definitions: []m.Definition{
			{
				File: "app.js", Name: "route", Line: 6, Lines: 8, Score: 15.8,
				Scores: map[m.ScorerName]float64{m.ScorerLength: 0.8, m.ScorerNesting: 6},
			},
			{File: "demo.go", Name: "helper", Line: 4, Lines: 3, Score: 3.3},
		},
	}

	if err := ui.DisplayRank(report); err != nil {
		t.Fatalf("DisplayRank() error = %v", err)
	}

	assertContainsAll(t, buf.String(),
		"SCORE",
		"15.80", "route", "app.js:6",
		"length=0.80 nesting=6.00",
		"3.30", "helper", "demo.go:4",
		"DEFINITIONS 2",
		"FILES 2",
		"NOT FOUND 1",
	)

	if ui.RankProgress() != nil {
		t.Fatalf("RankProgress() should be nil for plain output")
	}
}
