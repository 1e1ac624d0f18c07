package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/splice/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	stateStyles  = map[m.SectionState]lipgloss.Style{
		m.StateInline:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		m.StateExtracted: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		m.StateOrphaned:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
)

// TUI implements UI using lipgloss styling and a Bubble Tea browser for
// long rankings.
type TUI struct {
	output    io.Writer
	errOutput io.Writer
}

// NewTUI creates a new TUI. Progress is drawn on errOutput.
func NewTUI(output, errOutput io.Writer) *TUI {
	return &TUI{output: output, errOutput: errOutput}
}

// DisplayOpResult shows the outcome of an open or close.
func (t *TUI) DisplayOpResult(op string, result m.OpResult) error {
	var b strings.Builder

	b.WriteString(headingStyle.Render(op) + " " + result.Message + "\n")

	if warnings := formatWarnings(result); warnings != "" {
		b.WriteString(warnStyle.Render("  ! "+warnings) + "\n")
	}

	for _, path := range result.Artifacts {
		b.WriteString(mutedStyle.Render("  "+string(path)) + "\n")
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayStatus lists sections with their state.
func (t *TUI) DisplayStatus(doc m.Path, statuses []m.SectionStatus) error {
	var b strings.Builder

	b.WriteString(headingStyle.Render(string(doc)) + "\n")

	if len(statuses) == 0 {
		b.WriteString(mutedStyle.Render("  no sections") + "\n")
	}

	width := 0
	for _, st := range statuses {
		width = max(width, lipgloss.Width(st.QualifiedName))
	}

	for _, st := range statuses {
		style := stateStyles[st.State]
		line := fmt.Sprintf("  %-*s  %s  %s",
			width, st.QualifiedName,
			style.Width(9).Render(string(st.State)),
			mutedStyle.Render(fmt.Sprintf("line %d, %d lines", st.StartLine, st.Lines)),
		)

		if st.Artifact != "" {
			line += mutedStyle.Render("  " + string(st.Artifact))
		}

		b.WriteString(line + "\n")
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplaySpan prints the definition text under a heading.
func (t *TUI) DisplaySpan(name string, span m.Span, found bool) error {
	if !found {
		_, err := fmt.Fprintln(t.output, warnStyle.Render(name+": not found"))
		return err
	}

	heading := headingStyle.Render(name) + mutedStyle.Render(fmt.Sprintf(" bytes %d-%d", span.StartOffset, span.EndOffset))
	_, err := fmt.Fprintf(t.output, "%s\n%s\n", heading, span.Text)

	return err
}

// DisplayRank shows the ranking. Rankings taller than the terminal open an
// interactive browser.
func (t *TUI) DisplayRank(report m.RankReport) error {
	model := newRankModel().handleReportMsg(reportMsg{report: report})

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprintln(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// RankProgress draws a progress bar on the error stream.
func (t *TUI) RankProgress() func(done, total int) {
	return newRankProgress(t.errOutput).Update
}
