// Package model defines the data structures shared by splice's engines.
package model

import "strings"

// Path represents a file system path.
type Path string

// Layout describes how markers, stubs and artifacts are spelled for a document.
type Layout struct {
	// Comment is the line-comment token that prefixes section markers.
	Comment string
	// Header is the syntax-declaration line written at the top of every artifact.
	Header string
	// Include is the inclusion statement template; {file} is replaced with the
	// artifact file name.
	Include string
	// Extension overrides the artifact extension. Empty means "same as the document".
	Extension string
}

// IncludePlaceholder is substituted with the artifact file name in Layout.Include.
const IncludePlaceholder = "{file}"

// DefaultLayout returns the bash-flavoured layout used when nothing is configured.
func DefaultLayout() Layout {
	return Layout{
		Comment: "#",
		Header:  "#!/usr/bin/env bash",
		Include: `source "$(dirname "${BASH_SOURCE[0]}")/{file}"`,
	}
}

// IncludeLine renders the inclusion statement for the given artifact file name.
func (l Layout) IncludeLine(file string) string {
	return strings.ReplaceAll(l.Include, IncludePlaceholder, file)
}

// Section is a named, marker-delimited region of a document.
type Section struct {
	Name          string
	QualifiedName string
	Indent        string
	// StartLine and EndLine are the 0-based indices of the begin and end marker
	// lines within the text that was parsed. StartLine < EndLine always holds.
	StartLine int
	EndLine   int
	// Content holds the lines strictly between the markers with nested sections
	// already replaced by stubs and trailing blank lines removed.
	Content  []string
	Children []Section
}

// LineCount returns the number of document lines the section occupies,
// markers included.
func (s Section) LineCount() int {
	return s.EndLine - s.StartLine + 1
}

// Stub is the three-line placeholder left behind by an extracted section.
type Stub struct {
	Name     string
	Indent   string
	Line     int // index of the begin marker
	Artifact string
}
