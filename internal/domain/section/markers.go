// Package section finds marker-delimited regions of a document and knows how
// their stubs and artifacts are spelled.
package section

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	m "github.com/mouse-blink/splice/internal/model"
)

// Markers matches and renders section markers, include lines and artifact
// names for one document.
type Markers struct {
	layout  m.Layout
	begin   *regexp.Regexp
	end     *regexp.Regexp
	include *regexp.Regexp
	base    string
	ext     string
	// dir is the artifact directory relative to the document, slash separated.
	dir string
}

// NewMarkers compiles the marker patterns for the document at path.
func NewMarkers(layout m.Layout, document m.Path) (*Markers, error) {
	if strings.TrimSpace(layout.Comment) == "" {
		return nil, fmt.Errorf("layout comment token is empty")
	}

	if !strings.Contains(layout.Include, m.IncludePlaceholder) {
		return nil, fmt.Errorf("include template %q has no %s placeholder", layout.Include, m.IncludePlaceholder)
	}

	comment := regexp.QuoteMeta(layout.Comment)

	parts := strings.SplitN(layout.Include, m.IncludePlaceholder, 2)
	include := `^\s*` + regexp.QuoteMeta(strings.TrimSpace(parts[0])) +
		`(?P<file>[^\s"'\\]+)` + regexp.QuoteMeta(strings.TrimSpace(parts[1])) + `\s*$`

	name := filepath.Base(string(document))
	ext := strings.TrimPrefix(filepath.Ext(name), ".")

	if layout.Extension != "" {
		ext = strings.TrimPrefix(layout.Extension, ".")
	}

	if ext == "" {
		ext = "sh"
	}

	return &Markers{
		layout:  layout,
		begin:   regexp.MustCompile(`^(?P<indent>[ \t]*)` + comment + ` (?P<name>[a-z_]+) begin\s*$`),
		end:     regexp.MustCompile(`^[ \t]*` + comment + ` (?P<name>[a-z_]+) end\s*$`),
		include: regexp.MustCompile(include),
		base:    strings.TrimSuffix(name, filepath.Ext(name)),
		ext:     ext,
	}, nil
}

// WithArtifactDir returns a copy whose top-level include lines point into dir,
// given relative to the document's directory.
func (k *Markers) WithArtifactDir(dir string) *Markers {
	c := *k

	c.dir = filepath.ToSlash(filepath.Clean(dir))
	if c.dir == "." {
		c.dir = ""
	}

	return &c
}

// Layout returns the layout the markers were built from.
func (k *Markers) Layout() m.Layout {
	return k.layout
}

// Begin reports whether line is a begin marker and returns its name and indent.
func (k *Markers) Begin(line string) (name, indent string, ok bool) {
	match := k.begin.FindStringSubmatch(line)
	if match == nil {
		return "", "", false
	}

	return match[k.begin.SubexpIndex("name")], match[k.begin.SubexpIndex("indent")], true
}

// End reports whether line is an end marker and returns its name.
func (k *Markers) End(line string) (string, bool) {
	match := k.end.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}

	return match[k.end.SubexpIndex("name")], true
}

// Include reports whether line is an include statement for an artifact of this
// document and returns the referenced file name.
func (k *Markers) Include(line string) (string, bool) {
	match := k.include.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}

	file := match[k.include.SubexpIndex("file")]
	if _, ok := k.QualifiedName(file); !ok {
		return "", false
	}

	return file, true
}

// QualifiedName recovers the qualified section name from an artifact reference.
func (k *Markers) QualifiedName(file string) (string, bool) {
	name := path.Base(file)
	if !strings.HasPrefix(name, k.base+".") || !strings.HasSuffix(name, "."+k.ext) {
		return "", false
	}

	qualified := strings.TrimSuffix(strings.TrimPrefix(name, k.base+"."), "."+k.ext)
	if qualified == "" {
		return "", false
	}

	return qualified, true
}

// ArtifactName returns the deterministic artifact file name for a qualified name.
func (k *Markers) ArtifactName(qualified string) string {
	return k.base + "." + qualified + "." + k.ext
}

// ArtifactRef returns the include target for a section. Top-level stubs live
// in the document and point into the artifact directory; nested stubs live in
// their parent's artifact and name a sibling file.
func (k *Markers) ArtifactRef(qualified string) string {
	name := k.ArtifactName(qualified)
	if k.dir == "" || strings.Contains(qualified, ".") {
		return name
	}

	return path.Join(k.dir, name)
}

// Stub renders the three stub lines for a section.
func (k *Markers) Stub(s m.Section, beginLine, endLine string) []string {
	return []string{
		beginLine,
		s.Indent + k.layout.IncludeLine(k.ArtifactRef(s.QualifiedName)),
		endLine,
	}
}

// Header returns the artifact header lines.
func (k *Markers) Header() []string {
	return []string{k.layout.Header, ""}
}
