// Package scorers provides the independent scoring functions folded over the
// text of one extracted definition.
package scorers

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/splice/internal/model"
)

// Input is the definition a scorer looks at.
type Input struct {
	File m.Path
	Name string
	// Text is the full span text, leading doc comment included.
	Text string
}

// Head returns the text up to and excluding the opening brace of the body.
func (in Input) Head() string {
	return in.Text[:bodyStart(in.Text)]
}

// Body returns the text from the opening brace of the body on.
func (in Input) Body() string {
	return in.Text[bodyStart(in.Text):]
}

// bodyStart finds the first "{" outside comments and parentheses, or len(text).
func bodyStart(text string) int {
	depth := 0

	for i := 0; i < len(text); i++ {
		switch {
		case strings.HasPrefix(text[i:], "/*"):
			end := strings.Index(text[i+2:], "*/")
			if end < 0 {
				return len(text)
			}

			i += end + 3
		case strings.HasPrefix(text[i:], "//"):
			end := strings.IndexByte(text[i:], '\n')
			if end < 0 {
				return len(text)
			}

			i += end
		case text[i] == '(':
			depth++
		case text[i] == ')':
			depth--
		case text[i] == '{' && depth <= 0:
			return i
		}
	}

	return len(text)
}

// Scorer scores one aspect of a definition. Higher means more attention worthy.
type Scorer interface {
	Name() m.ScorerName
	Score(in Input) float64
}

type scorerFunc struct {
	name m.ScorerName
	fn   func(in Input) float64
}

func (s scorerFunc) Name() m.ScorerName { return s.name }

func (s scorerFunc) Score(in Input) float64 { return s.fn(in) }

// Names lists every available scorer in evaluation order.
func Names() []m.ScorerName {
	return []m.ScorerName{
		m.ScorerLength,
		m.ScorerNesting,
		m.ScorerParams,
		m.ScorerBranches,
		m.ScorerDocs,
		m.ScorerCallers,
	}
}

// Select returns the scorers for names, all of them when names is empty.
// The callers scorer reads from idx.
func Select(idx *CallIndex, names ...m.ScorerName) ([]Scorer, error) {
	if len(names) == 0 {
		names = Names()
	}

	selected := make([]Scorer, 0, len(names))

	for _, name := range names {
		switch name {
		case m.ScorerLength:
			selected = append(selected, scorerFunc{name: name, fn: Length})
		case m.ScorerNesting:
			selected = append(selected, scorerFunc{name: name, fn: Nesting})
		case m.ScorerParams:
			selected = append(selected, scorerFunc{name: name, fn: Params})
		case m.ScorerBranches:
			selected = append(selected, scorerFunc{name: name, fn: Branches})
		case m.ScorerDocs:
			selected = append(selected, scorerFunc{name: name, fn: Docs})
		case m.ScorerCallers:
			if idx == nil {
				return nil, fmt.Errorf("scorer %s needs a call index", name)
			}

			selected = append(selected, scorerFunc{name: name, fn: idx.Score})
		default:
			return nil, fmt.Errorf("unsupported scorer: %s", name)
		}
	}

	return selected, nil
}
