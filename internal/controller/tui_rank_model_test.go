package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/splice/internal/model"
)

func sampleReport(n int) m.RankReport {
	report := m.RankReport{Files: 2, NotFound: 1}

	for i := range n {
		report.Definitions = append(report.Definitions, m.Definition{
			File:  "src/app.js",
			Name:  "def" + string(rune('a'+i%26)),
			Line:  i + 1,
			Lines: 3,
			Score: float64(n - i),
		})
	}

	return report
}

func TestAnimateScroll_Edges(t *testing.T) {
	if got := animateScroll("hello", 0, 0); got != "" {
		t.Fatalf("animateScroll width 0 = %q, want empty", got)
	}

	if got := animateScroll("hi", 5, 0); got != "hi" {
		t.Fatalf("animateScroll short text = %q, want hi", got)
	}

	if got := animateScroll("abcdef", 3, 0); got != "ab…" {
		t.Fatalf("animateScroll pause = %q, want ab…", got)
	}

	got := animateScroll("abcdef", 3, 10)
	if got == "ab…" || len([]rune(got)) != 3 {
		t.Fatalf("animateScroll scrolled = %q, want len 3 and not truncated", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 0); got != "" {
		t.Fatalf("truncateToWidth width 0 = %q, want empty", got)
	}

	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Fatalf("truncateToWidth no truncation = %q", got)
	}

	if got := truncateToWidth("hello", 1); got != "…" {
		t.Fatalf("truncateToWidth width 1 = %q, want ellipsis", got)
	}

	if got := truncateToWidth("hello", 2); got != "h…" {
		t.Fatalf("truncateToWidth width 2 = %q, want h…", got)
	}
}

func TestRankModel_HandleReportMsgAndView(t *testing.T) {
	rm := newRankModel()
	if got := rm.View(); got != "Loading ranked definitions…\n" {
		t.Fatalf("View() before render = %q", got)
	}

	rm = rm.handleReportMsg(reportMsg{report: sampleReport(3)})
	if !rm.rendered || len(rm.report.Definitions) != 3 {
		t.Fatalf("handleReportMsg did not store the report")
	}

	if rm.lastSelected != 0 {
		t.Fatalf("lastSelected = %d, want 0", rm.lastSelected)
	}

	rm.width = 80
	rm.height = 25

	view := rm.View()
	if !strings.Contains(view, "Splice Definition Ranking") {
		t.Fatalf("View() missing title\n%s", view)
	}

	if !strings.Contains(view, "Not found: 1") {
		t.Fatalf("View() missing summary\n%s", view)
	}

	if cmd := rm.Init(); cmd == nil {
		t.Fatalf("Init() returned nil cmd")
	}

	table := rm.renderTable()
	if !strings.Contains(table, "Score") || !strings.Contains(table, "Location") {
		t.Fatalf("renderTable missing headers\n%s", table)
	}

	// unknown size falls back to defaults
	rm.height = 0
	rm.width = 0
	_ = rm.renderTable()
}

func TestRankModel_NeedsPagination(t *testing.T) {
	rm := newRankModel().handleReportMsg(reportMsg{report: sampleReport(20)})

	if rm.needsPagination() {
		t.Fatalf("needsPagination() with unknown height = true, want false")
	}

	rm.height = 100
	if rm.needsPagination() {
		t.Fatalf("needsPagination() with tall terminal = true, want false")
	}

	rm.height = 20
	if !rm.needsPagination() {
		t.Fatalf("needsPagination() with short terminal = false, want true")
	}
}

func TestRankModel_UpdateBranches(t *testing.T) {
	rm := newRankModel().handleReportMsg(reportMsg{report: sampleReport(3)})

	model, cmd := rm.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected tick cmd")
	}

	updated := model.(rankModel)
	if updated.animOffset != 1 {
		t.Fatalf("animOffset = %d, want 1", updated.animOffset)
	}

	model, _ = updated.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	updated = model.(rankModel)
	if updated.width != 100 || updated.height != 40 {
		t.Fatalf("window size not applied")
	}

	_, cmd = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("expected quit cmd")
	}

	model, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})

	updated = model.(rankModel)
	if updated.lastSelected != 1 {
		t.Fatalf("lastSelected = %d, want 1", updated.lastSelected)
	}

	if updated.animOffset != 0 {
		t.Fatalf("animOffset = %d, want reset to 0", updated.animOffset)
	}

	idle := newRankModel()

	_, cmd = idle.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Fatalf("tick before render should not schedule another tick")
	}

	model, _ = idle.Update(reportMsg{report: sampleReport(1)})
	if !model.(rankModel).rendered {
		t.Fatalf("expected rendered after reportMsg")
	}
}

func TestRankDelegate_Render(t *testing.T) {
	delegate := rankDelegate{}
	def := m.Definition{File: "src/app.js", Name: "route", Line: 12, Score: 15.8}
	items := []list.Item{definitionItem{def: def}}
	l := list.New(items, delegate, 60, 5)

	var buf bytes.Buffer

	delegate.Render(&buf, l, 0, items[0])

	output := buf.String()
	if !strings.Contains(output, "route") || !strings.Contains(output, "src/app.js:12") || !strings.Contains(output, "15.80") {
		t.Fatalf("render output = %q", output)
	}

	buf.Reset()
	delegate.Render(&buf, l, 1, items[0])

	if buf.Len() == 0 {
		t.Fatalf("render output empty")
	}

	buf.Reset()
	delegate.Render(&buf, l, 0, struct{ list.Item }{})

	if buf.Len() != 0 {
		t.Fatalf("render of unknown item = %q, want empty", buf.String())
	}

	if delegate.Height() != 1 || delegate.Spacing() != 0 {
		t.Fatalf("Height/Spacing = %d/%d, want 1/0", delegate.Height(), delegate.Spacing())
	}

	if cmd := delegate.Update(nil, &l); cmd != nil {
		t.Fatalf("Update() returned cmd")
	}
}

func TestDefinitionItem_FilterValue(t *testing.T) {
	item := definitionItem{def: m.Definition{File: "src/app.js", Name: "route"}}

	if got := item.FilterValue(); got != "route src/app.js" {
		t.Fatalf("FilterValue() = %q", got)
	}
}
