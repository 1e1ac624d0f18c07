package span

import (
	"regexp"
	"strings"
)

const (
	docCommentPattern = `/\*\*(?:[^*]|\*+[^*/])*\*+/[ \t]*\r?\n?[ \t]*`
	modifierWords     = `export|default|public|private|protected|internal|static|abstract|final|async|override|readonly|unsafe|extern|declare|pub(?:\([a-z]+\))?`
	modifiersPattern  = `(?:(?:` + modifierWords + `)\s+)*`
	genericsPattern   = `(?:\s*(?:<[^<>{}()]*>|\[[^\[\]{}()]*\]))?`
	paramsPattern     = `\s*\([^()]*(?:\([^()]*\)[^()]*)*\)`
	returnPattern     = `[^{};\n]*`
	bodyPattern       = `\{(?:[^{}]|\{[^{}]*\})*\}`
)

var (
	modifierLine = regexp.MustCompile(`^(?:@[\w.]+(?:\([^)]*\))?|#\[[^\]]*\]|(?:(?:` + modifierWords + `)\s*)+)$`)
	declaredName = regexp.MustCompile(
		`\b(?:function\s*\*?\s*|def\s+|fn\s+|func\s+(?:\([^()]*\)\s*)?|(?:class|interface|trait|struct|enum)\s+|type\s+)` +
			`([A-Za-z_$][\w$]*)`)
)

// functionHead matches a callable keyword followed by the exact name.
func functionHead(name string) string {
	return `(?:(?:function|def|fn)\s+|function\s*\*\s*|func\s+|func\s*\([^()]*\)\s*)` +
		regexp.QuoteMeta(name) + genericsPattern + paramsPattern + returnPattern
}

// typeHead matches a class-like keyword followed by the exact name and an
// optional heritage clause.
func typeHead(name string) string {
	return `(?:(?:class|interface|trait|struct|enum)\s+|type\s+)` +
		regexp.QuoteMeta(name) + `\b` + returnPattern
}

func declarationPattern(name string) string {
	return `(?P<decl>\b` + modifiersPattern + `(?:` + functionHead(name) + `|` + typeHead(name) + `))`
}

// compileFast builds the bounded single-pass pattern for the common case.
func compileFast(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?:` + docCommentPattern + `)?` + declarationPattern(name) + `(?P<body>` + bodyPattern + `)`)
}

// compilePrefix builds the declaration-prefix pattern used by the structural
// scan. It stops at the opening brace.
func compilePrefix(name string) *regexp.Regexp {
	return regexp.MustCompile(declarationPattern(name) + `(?P<body>\{)`)
}

func isModifierLine(line string) bool {
	return modifierLine.MatchString(strings.TrimSpace(line))
}
