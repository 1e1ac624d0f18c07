package scorers

import (
	"regexp"
	"strings"

	"github.com/mouse-blink/splice/internal/domain/scanner"
)

const (
	linesPerPoint   = 10.0
	nestingWeight   = 2.0
	paramWeight     = 1.0
	branchWeight    = 1.0
	undocumentedPts = 2.0
)

var branchKeyword = regexp.MustCompile(`\b(?:if|elif|for|foreach|while|switch|case|catch|except|match)\b|&&|\|\||\?\?`)

// Length scores a point per ten lines.
func Length(in Input) float64 {
	if in.Text == "" {
		return 0
	}

	return float64(strings.Count(in.Text, "\n")+1) / linesPerPoint
}

// Nesting scores the brace depth reached beyond the body itself.
func Nesting(in Input) float64 {
	depth := scanner.MaxDepth(in.Body()) - 1
	if depth < 0 {
		return 0
	}

	return float64(depth) * nestingWeight
}

// Params scores the number of top-level parameters in the declaration.
func Params(in Input) float64 {
	return float64(countParams(in.Head(), in.Name)) * paramWeight
}

// Branches scores branching keywords and short-circuit operators in the body.
func Branches(in Input) float64 {
	return float64(len(branchKeyword.FindAllStringIndex(in.Body(), -1))) * branchWeight
}

// Docs penalizes definitions without a documentation comment.
func Docs(in Input) float64 {
	if hasDocComment(in.Head()) {
		return 0
	}

	return undocumentedPts
}

// countParams counts the top-level entries of the parameter list that
// follows name in head.
func countParams(head, name string) int {
	open := paramListStart(head, name)
	if open < 0 {
		return 0
	}

	depth, count := 0, 0
	seen := false

	for i := open; i < len(head); i++ {
		c := head[i]

		switch {
		case c == '(' || c == '[' || c == '{' || c == '<':
			depth++
		case c == '>' && i > 0 && (head[i-1] == '-' || head[i-1] == '='):
		case c == ')' || c == ']' || c == '}' || c == '>':
			depth--
			if depth == 0 {
				if seen {
					count++
				}

				return count
			}
		case c == ',' && depth == 1:
			count++
			seen = false
		case depth >= 1 && !isSpace(c):
			seen = true
		}
	}

	return 0
}

// paramListStart returns the offset of the "(" opening the parameter list of
// name, skipping generic parameters.
func paramListStart(head, name string) int {
	if name == "" {
		return -1
	}

	for from := 0; ; {
		i := strings.Index(head[from:], name)
		if i < 0 {
			return -1
		}

		pos := skipSpace(head, from+i+len(name))
		if pos < len(head) && (head[pos] == '<' || head[pos] == '[') {
			pos = skipSpace(head, skipGroup(head, pos))
		}

		if pos < len(head) && head[pos] == '(' {
			return pos
		}

		from += i + len(name)
	}
}

func skipGroup(s string, at int) int {
	open, closing := s[at], byte(']')
	if open == '<' {
		closing = '>'
	}

	depth := 0

	for i := at; i < len(s); i++ {
		switch s[i] {
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}

	return len(s)
}

func skipSpace(s string, at int) int {
	for at < len(s) && isSpace(s[at]) {
		at++
	}

	return at
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func hasDocComment(head string) bool {
	for _, line := range strings.Split(head, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "/*") {
			return true
		}
	}

	return false
}
