package domain

import (
	"strings"

	"github.com/mouse-blink/splice/internal/domain/scorers"
	m "github.com/mouse-blink/splice/internal/model"
)

const ignoreDirective = "splice:ignore"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(scorer m.ScorerName) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[strings.ToLower(string(scorer))]

	return ok
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// commentText strips the comment token of a single comment line. ok is false
// when the line is not a comment.
func commentText(line string) (string, bool) {
	s := strings.TrimSpace(line)

	for _, token := range []string{"//", "/*", "#", "*", "--"} {
		if strings.HasPrefix(s, token) {
			s = strings.TrimSpace(strings.TrimPrefix(s, token))
			s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))

			return s, true
		}
	}

	return "", false
}

func parseIgnoreDirective(line string) (ignoreRule, bool) {
	s, ok := commentText(line)
	if !ok {
		return ignoreRule{}, false
	}

	// Block comments may start on the same line as "/**".
	s = strings.TrimSpace(strings.TrimLeft(s, "*"))

	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(s, ignoreDirective))
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, true
}

func collectIgnoreRule(lines []string) ignoreRule {
	var rule ignoreRule

	for _, line := range lines {
		r, ok := parseIgnoreDirective(line)
		if !ok {
			continue
		}

		mergeIgnoreRule(&rule, r)
	}

	return rule
}

// fileIgnoreRule reads directives from the leading comment block of source.
func fileIgnoreRule(source string) ignoreRule {
	var header []string

	for _, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if _, ok := commentText(line); !ok {
			break
		}

		header = append(header, line)
	}

	return collectIgnoreRule(header)
}

// definitionIgnoreRule reads directives from the declaration head of a span
// and from the line comments directly above it.
func definitionIgnoreRule(source string, sp m.Span) ignoreRule {
	head := scorers.Input{Text: sp.Text}.Head()
	rule := collectIgnoreRule(strings.Split(head, "\n"))

	above := strings.Split(source[:sp.StartOffset], "\n")
	// The last element is the partial line the span starts on.
	above = above[:len(above)-1]

	var comments []string

	for i := len(above) - 1; i >= 0; i-- {
		if _, ok := commentText(above[i]); !ok {
			break
		}

		comments = append(comments, above[i])
	}

	mergeIgnoreRule(&rule, collectIgnoreRule(comments))

	return rule
}
