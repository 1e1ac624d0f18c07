package controller

import (
	"bytes"
	"strings"
	"testing"

	m "github.com/mouse-blink/splice/internal/model"
)

func TestTUI_DisplayOpResult(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out, &bytes.Buffer{})

	err := ui.DisplayOpResult("close", m.OpResult{
		Count:     1,
		Missing:   1,
		Message:   "closed 1 artifact(s) for setup.sh, 1 skipped",
		Artifacts: []m.Path{"setup.a.sh"},
	})
	if err != nil {
		t.Fatalf("DisplayOpResult() error = %v", err)
	}

	assertContainsAll(t, out.String(), "close", "closed 1 artifact(s)", "missing artifacts: 1", "setup.a.sh")
}

func TestTUI_DisplayStatus(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out, &bytes.Buffer{})

	err := ui.DisplayStatus("setup.sh", []m.SectionStatus{
		{QualifiedName: "install", State: m.StateInline, StartLine: 3, Lines: 4},
		{QualifiedName: "config.inner", State: m.StateOrphaned, StartLine: 9, Lines: 3, Artifact: "setup.config.inner.sh"},
	})
	if err != nil {
		t.Fatalf("DisplayStatus() error = %v", err)
	}

	assertContainsAll(t, out.String(), "setup.sh", "install", "inline", "line 3, 4 lines", "orphaned", "setup.config.inner.sh")

	out.Reset()

	if err := ui.DisplayStatus("empty.sh", nil); err != nil {
		t.Fatalf("DisplayStatus() error = %v", err)
	}

	assertContainsAll(t, out.String(), "no sections")
}

func TestTUI_DisplaySpan(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out, &bytes.Buffer{})

	if err := ui.DisplaySpan("a", m.Span{StartOffset: 4, EndOffset: 19, Text: "function a() {}"}, true); err != nil {
		t.Fatalf("DisplaySpan() error = %v", err)
	}

	assertContainsAll(t, out.String(), "bytes 4-19", "function a() {}")

	out.Reset()

	if err := ui.DisplaySpan("b", m.Span{}, false); err != nil {
		t.Fatalf("DisplaySpan() error = %v", err)
	}

	assertContainsAll(t, out.String(), "b: not found")
}

func TestTUI_DisplayRank_PrintsWhenNotATerminal(t *testing.T) {
	var out bytes.Buffer

	ui := NewTUI(&out, &bytes.Buffer{})

	report := m.RankReport{Files: 1}
	for _, name := range []string{"alpha", "beta", "gamma"} {
		report.Definitions = append(report.Definitions, m.Definition{File: "a.js", Name: name, Line: 1, Score: 1})
	}

	if err := ui.DisplayRank(report); err != nil {
		t.Fatalf("DisplayRank() error = %v", err)
	}

	output := out.String()
	assertContainsAll(t, output, "Splice Definition Ranking", "alpha", "beta", "gamma", "a.js:1")

	if strings.Contains(output, "\x1b[?1049h") {
		t.Fatalf("DisplayRank() should not enter the alternate screen")
	}
}

func TestTUI_RankProgress(t *testing.T) {
	var errOut bytes.Buffer

	ui := NewTUI(&bytes.Buffer{}, &errOut)

	progress := ui.RankProgress()
	if progress == nil {
		t.Fatalf("RankProgress() = nil")
	}

	progress(1, 2)
	progress(2, 2)

	if !strings.Contains(errOut.String(), "Ranking files") {
		t.Fatalf("progress output missing description: %q", errOut.String())
	}
}
