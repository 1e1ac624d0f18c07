package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/splice/internal/model"
)

type tickMsg time.Time

// rankDelegate renders one definition per line.
type rankDelegate struct {
	offset int
}

func (d rankDelegate) Height() int  { return 1 }
func (d rankDelegate) Spacing() int { return 0 }
func (d rankDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d rankDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	entry, ok := item.(definitionItem)
	if !ok {
		return
	}

	isSelected := index == l.Index()

	var nameStyle, scoreStyle, locStyle lipgloss.Style

	var displayLoc string

	nameWidth := 24
	width := l.Width() - scoreWidth - nameWidth - 4

	if isSelected {
		base := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		nameStyle = base.Width(nameWidth)
		scoreStyle = base.Width(scoreWidth).Align(lipgloss.Right)
		locStyle = base

		displayLoc = animateScroll(formatLocation(entry.def), width, d.offset)
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(nameWidth)
		scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(scoreWidth).
			Align(lipgloss.Right)
		locStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		displayLoc = truncateToWidth(formatLocation(entry.def), width)
	}

	line := fmt.Sprintf("%s  %s  %s",
		scoreStyle.Render(formatScore(entry.def.Score)),
		nameStyle.Render(truncateToWidth(entry.def.Name, nameWidth)),
		locStyle.Render(displayLoc),
	)
	_, _ = fmt.Fprint(w, line)
}

func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	textWidth := lipgloss.Width(text)
	if textWidth <= width {
		return text
	}

	// Gap between repeats
	gap := "   "

	// Initial pause before scrolling starts (in ticks)
	pause := 5

	if offset < pause {
		return truncateToWidth(text, width)
	}

	effectiveStep := offset - pause

	// Create the repeating pattern: text + gap
	// We work with runes to handle multi-byte characters correctly
	runes := []rune(text + gap)
	n := len(runes)

	if n == 0 {
		return ""
	}

	start := effectiveStep % n

	// Construct the window
	res := make([]rune, 0, width)
	for i := range width {
		idx := (start + i) % n
		res = append(res, runes[idx])
	}

	return string(res)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

const (
	scoreWidth = 8
	// chromeHeight is the number of rows around the list: title, summary,
	// footer, borders and headers.
	chromeHeight = 9
)

// rankModel browses ranked definitions.
type rankModel struct {
	width        int
	height       int
	defList      list.Model
	delegate     rankDelegate
	report       m.RankReport
	rendered     bool
	animOffset   int
	lastSelected int
}

func newRankModel() rankModel {
	delegate := rankDelegate{}
	defList := list.New([]list.Item{}, delegate, 80, 20)
	defList.SetShowPagination(false)
	defList.SetShowFilter(true)
	defList.SetShowHelp(false)
	defList.SetShowTitle(false)
	defList.SetShowStatusBar(false)
	defList.FilterInput.Placeholder = "Filter by name or file…"

	return rankModel{
		defList:      defList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (rm rankModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (rm rankModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.height = msg.Height
		rm.defList.SetWidth(rm.width)

	case tickMsg:
		if rm.defList.FilterState() != list.Filtering && rm.rendered {
			rm.animOffset++
			rm.delegate.offset = rm.animOffset
			rm.defList.SetDelegate(rm.delegate)

			return rm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
				return tickMsg(t)
			})
		}

		return rm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return rm, tea.Quit
		default:
			var newList list.Model

			newList, cmd = rm.defList.Update(msg)
			rm.defList = newList

			// Restart scrolling when the selection moves.
			if rm.defList.Index() != rm.lastSelected {
				rm.lastSelected = rm.defList.Index()
				rm.animOffset = 0
				rm.delegate.offset = 0
				rm.defList.SetDelegate(rm.delegate)
			}

			return rm, cmd
		}

	case reportMsg:
		rm = rm.handleReportMsg(msg)
	}

	return rm, cmd
}

func (rm rankModel) handleReportMsg(msg reportMsg) rankModel {
	rm.report = msg.report

	items := make([]list.Item, 0, len(msg.report.Definitions))
	for _, def := range msg.report.Definitions {
		items = append(items, definitionItem{def: def})
	}

	rm.defList.SetItems(items)
	rm.rendered = true

	if len(items) > 0 && rm.lastSelected == -1 {
		rm.lastSelected = 0
	}

	return rm
}

// needsPagination reports whether the definitions overflow the terminal.
func (rm rankModel) needsPagination() bool {
	if rm.height <= 0 {
		return false
	}

	return len(rm.report.Definitions) > rm.height-chromeHeight
}

func (rm rankModel) View() string {
	if !rm.rendered {
		return "Loading ranked definitions…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("Splice Definition Ranking")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Definitions: %s   Files: %s   Not found: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(rm.report.Definitions))),
		accentStyle.Render(fmt.Sprintf("%d", rm.report.Files)),
		accentStyle.Render(fmt.Sprintf("%d", rm.report.NotFound)),
	))

	table := rm.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(rm.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (rm rankModel) renderTable() string {
	// Without a known height every definition is shown.
	listHeight := rm.height - chromeHeight
	if rm.height <= 0 {
		listHeight = len(rm.report.Definitions)
	}

	if listHeight < 5 {
		listHeight = 5
	}

	width := rm.width
	if width <= 0 {
		width = 100
	}

	// Margin, border and padding take two columns each.
	listWidth := width - 6

	rm.defList.SetHeight(listHeight)
	rm.defList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%*s  %-24s  %s", scoreWidth, "Score", "Definition", "Location"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			rm.defList.View(),
		),
	)
}
