package controller

import (
	"bytes"
	"fmt"

	"github.com/mouse-blink/splice/internal/domain/scorers"
	m "github.com/mouse-blink/splice/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayOpResult prints the status message of an open or close.
func (s *SimpleUI) DisplayOpResult(_ string, result m.OpResult) error {
	s.printf("%s\n", result.Message)

	for _, path := range result.Artifacts {
		s.printf("  %s\n", path)
	}

	return nil
}

// DisplayStatus prints the sections of a document as a table.
func (s *SimpleUI) DisplayStatus(doc m.Path, statuses []m.SectionStatus) error {
	if len(statuses) == 0 {
		s.printf("no sections in %s\n", doc)
		return nil
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Section", "State", "Line", "Lines", "Artifact"})

	counts := make(map[m.SectionState]int)

	for _, st := range statuses {
		counts[st.State]++
		table.Append([]string{
			st.QualifiedName,
			string(st.State),
			fmt.Sprintf("%d", st.StartLine),
			fmt.Sprintf("%d", st.Lines),
			string(st.Artifact),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(statuses)),
		fmt.Sprintf("%d inline", counts[m.StateInline]),
		"",
		"",
		fmt.Sprintf("%d extracted %d orphaned", counts[m.StateExtracted], counts[m.StateOrphaned]),
	})

	table.Render()
	s.printf("%s\n\n%s", doc, tableBuffer.String())

	return nil
}

// DisplaySpan prints the definition text, or a not found notice.
func (s *SimpleUI) DisplaySpan(name string, span m.Span, found bool) error {
	if !found {
		s.printf("%s: not found\n", name)
		return nil
	}

	s.printf("%s\n", span.Text)

	return nil
}

// DisplayRank prints the ranked definitions as a table.
func (s *SimpleUI) DisplayRank(report m.RankReport) error {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Score", "Definition", "Location", "Lines", "Breakdown"})

	for _, def := range report.Definitions {
		table.Append([]string{
			formatScore(def.Score),
			def.Name,
			formatLocation(def),
			fmt.Sprintf("%d", def.Lines),
			scoreBreakdown(def, scorers.Names()),
		})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Definitions %d", len(report.Definitions)),
		fmt.Sprintf("Files %d", report.Files),
		"",
		fmt.Sprintf("Not found %d", report.NotFound),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// RankProgress returns nil; plain output has no progress display.
func (s *SimpleUI) RankProgress() func(done, total int) {
	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}
