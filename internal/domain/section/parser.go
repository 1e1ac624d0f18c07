package section

import (
	"log/slog"
	"strings"

	m "github.com/mouse-blink/splice/internal/model"
)

// Result is the output of one Parse call.
type Result struct {
	Sections  []m.Section
	Unmatched int
}

// Parser finds top-level sections and resolves nested ones in place.
type Parser struct {
	markers *Markers
	logger  *slog.Logger
}

// NewParser constructs a Parser. A nil logger discards diagnostics.
func NewParser(markers *Markers, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Parser{markers: markers, logger: logger}
}

// Parse returns the sections of lines. Begin markers without a matching end
// marker are skipped and counted.
func (p *Parser) Parse(lines []string) Result {
	var res Result

	res.Sections = p.parse(lines, "", 0, &res.Unmatched)

	return res
}

func (p *Parser) parse(lines []string, parent string, base int, unmatched *int) []m.Section {
	var sections []m.Section

	for i := 0; i < len(lines); i++ {
		name, indent, ok := p.markers.Begin(lines[i])
		if !ok {
			continue
		}

		qualified := name
		if parent != "" {
			qualified = parent + "." + name
		}

		end := p.findEnd(lines, i+1, name)
		if end < 0 {
			*unmatched++

			p.logger.Debug("skipping unmatched begin marker", "section", qualified, "line", base+i+1)

			continue
		}

		raw := lines[i+1 : end]
		children := p.parse(raw, qualified, base+i+1, unmatched)
		content := trimTrailingBlank(Replace(raw, children, p.markers))

		if p.isReference(content) {
			i = end
			continue
		}

		sections = append(sections, m.Section{
			Name:          name,
			QualifiedName: qualified,
			Indent:        indent,
			StartLine:     i,
			EndLine:       end,
			Content:       content,
			Children:      children,
		})

		i = end
	}

	return sections
}

func (p *Parser) findEnd(lines []string, from int, name string) int {
	for j := from; j < len(lines); j++ {
		if endName, ok := p.markers.End(lines[j]); ok && endName == name {
			return j
		}
	}

	return -1
}

// isReference reports whether content already points at an artifact.
func (p *Parser) isReference(content []string) bool {
	for _, line := range content {
		if strings.TrimSpace(line) == "" {
			continue
		}

		_, ok := p.markers.Include(line)

		return ok
	}

	return false
}

// Replace swaps every section's marker-to-marker lines for its stub. Sections
// must be in document order; line numbers refer to lines as given.
func Replace(lines []string, sections []m.Section, markers *Markers) []string {
	if len(sections) == 0 {
		return append([]string(nil), lines...)
	}

	out := append([]string(nil), lines...)
	offset := 0

	for _, s := range sections {
		start := s.StartLine + offset
		end := s.EndLine + offset
		stub := markers.Stub(s, lines[s.StartLine], lines[s.EndLine])

		out = append(out[:start], append(stub, out[end+1:]...)...)
		offset += len(stub) - s.LineCount()
	}

	return out
}

func trimTrailingBlank(lines []string) []string {
	n := len(lines)
	for n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		n--
	}

	return lines[:n]
}
