// Package span locates the exact text of a named function- or class-like
// definition inside arbitrary source text.
package span

import (
	"regexp"
	"strings"

	"github.com/mouse-blink/splice/internal/domain/scanner"
	m "github.com/mouse-blink/splice/internal/model"
)

// DefaultLookback caps the backward search for doc comments and modifier
// lines. Prefixes further away than this are not attached to the span.
const DefaultLookback = 1000

type outcome int

const (
	miss outcome = iota
	hit
	fallback
)

// result is the tagged output of one pipeline stage.
type result struct {
	outcome outcome
	span    m.Span
}

// Extractor finds definition spans.
type Extractor struct {
	lookback int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLookback sets the backward search window in bytes.
func WithLookback(n int) Option {
	return func(e *Extractor) {
		if n >= 0 {
			e.lookback = n
		}
	}
}

// New constructs an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{lookback: DefaultLookback}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract is a convenience wrapper around a default Extractor.
func Extract(source, name string) (m.Span, bool) {
	return New().Extract(source, name)
}

// Extract returns the span of the first definition of name in source,
// including its doc comment and modifiers. The boolean is false when no
// balanced definition exists.
func (e *Extractor) Extract(source, name string) (m.Span, bool) {
	if name == "" || source == "" {
		return m.Span{}, false
	}

	prefix := compilePrefix(name)
	fast := compileFast(name)

	// A prefix inside a string literal fails the scan; later prefixes may
	// still be the real definition.
	for _, loc := range prefix.FindAllStringSubmatchIndex(source, -1) {
		declStart := loc[prefix.SubexpIndex("decl")*2]
		braceAt := loc[prefix.SubexpIndex("body")*2]

		if r := e.fastPath(fast, source, declStart); r.outcome == hit {
			return r.span, true
		}

		if r := e.structural(source, declStart, braceAt); r.outcome == hit {
			return r.span, true
		}
	}

	return m.Span{}, false
}

// fastPath tries the single bounded pattern within the lookback window of
// declStart. It only reports a hit when the match describes the same
// declaration as the prefix scan and the scanner agrees the matched body
// closes where the pattern says it does.
func (e *Extractor) fastPath(re *regexp.Regexp, source string, declStart int) result {
	lo := max(declStart-e.lookback, 0)

	loc := re.FindStringSubmatchIndex(source[lo:])
	if loc == nil {
		return result{outcome: fallback}
	}

	if lo+loc[re.SubexpIndex("decl")*2] != declStart {
		return result{outcome: fallback}
	}

	bodyStart := lo + loc[re.SubexpIndex("body")*2]
	end := lo + loc[1]

	if scanner.Closing(source, bodyStart+1, 1) != end-1 {
		return result{outcome: fallback}
	}

	// The prefix is attached by the same lookback as the structural path so
	// both agree on where a span starts.
	return result{outcome: hit, span: newSpan(source, e.lookbackStart(source, declStart), end)}
}

// structural finds the real closing brace with the string-aware scanner and
// then attaches the doc comment or modifier lines found by the lookback.
func (e *Extractor) structural(source string, declStart, braceAt int) result {
	closeAt := scanner.Closing(source, braceAt+1, 1)
	if closeAt < 0 {
		return result{outcome: miss}
	}

	start := e.lookbackStart(source, declStart)

	return result{outcome: hit, span: newSpan(source, start, closeAt+1)}
}

// lookbackStart walks backward from declStart, bounded by the lookback
// window, and returns where the span should begin.
func (e *Extractor) lookbackStart(source string, declStart int) int {
	floor := declStart - e.lookback
	if floor < 0 {
		floor = 0
	}

	lineStart := strings.LastIndexByte(source[:declStart], '\n') + 1
	if strings.TrimSpace(source[lineStart:declStart]) != "" {
		if doc := docCommentStart(source, declStart, floor); doc >= 0 {
			return doc
		}

		return declStart
	}

	start := declStart

	// Contiguous modifier/annotation lines directly above the declaration.
	for lineStart > floor {
		prevStart := strings.LastIndexByte(source[:lineStart-1], '\n') + 1
		if prevStart < floor {
			break
		}

		prev := source[prevStart : lineStart-1]
		if !isModifierLine(prev) {
			break
		}

		start = prevStart + leadingSpace(prev)
		lineStart = prevStart
	}

	if doc := docCommentStart(source, start, floor); doc >= 0 {
		return doc
	}

	return start
}

// docCommentStart returns the offset of a block comment ending right above
// pos (only whitespace and at most one line break in between), or -1.
func docCommentStart(source string, pos, floor int) int {
	end := pos
	newlines := 0

	for end > floor {
		c := source[end-1]
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			break
		}

		if c == '\n' {
			newlines++
		}

		end--
	}

	if newlines > 1 || end-2 < floor || !strings.HasSuffix(source[:end], "*/") {
		return -1
	}

	open := strings.LastIndex(source[floor:end-2], "/*")
	if open < 0 {
		return -1
	}

	return floor + open
}

func leadingSpace(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func newSpan(source string, start, end int) m.Span {
	return m.Span{StartOffset: start, EndOffset: end, Text: source[start:end]}
}

// Declarations lists the names declared in source in order of first
// appearance, without duplicates.
func Declarations(source string) []string {
	seen := make(map[string]struct{})

	var names []string

	for _, match := range declaredName.FindAllStringSubmatch(source, -1) {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

// Line returns the 1-based line number of offset within source.
func Line(source string, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}

	return strings.Count(source[:offset], "\n") + 1
}
