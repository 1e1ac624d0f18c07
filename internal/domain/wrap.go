package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/splice/internal/adapter"
	"github.com/mouse-blink/splice/internal/domain/section"
	m "github.com/mouse-blink/splice/internal/model"
)

// ErrMissingArtifact is returned by Close in strict mode when a stub refers to
// an artifact that does not exist.
var ErrMissingArtifact = errors.New("artifact not found")

const artifactPerm os.FileMode = 0o644

// WrapOptions tune a single open or close invocation.
type WrapOptions struct {
	// DryRun computes the result without touching the file system.
	DryRun bool
	// Strict turns a missing artifact into an error.
	Strict bool
}

// Wrapper moves marker-delimited sections between a document and its artifacts.
type Wrapper interface {
	Open(doc m.Path, opts WrapOptions) (m.OpResult, error)
	Close(doc m.Path, opts WrapOptions) (m.OpResult, error)
	Status(doc m.Path) ([]m.SectionStatus, error)
}

type wrapper struct {
	fsAdapter adapter.SourceFSAdapter
	resolver  adapter.Resolver
	layout    m.Layout
	logger    *slog.Logger
}

// NewWrapper creates a Wrapper. Artifacts are stored in the "artifacts"
// resource when the resolver knows it, next to the document otherwise.
func NewWrapper(fsAdapter adapter.SourceFSAdapter, resolver adapter.Resolver, layout m.Layout, logger *slog.Logger) Wrapper {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &wrapper{
		fsAdapter: fsAdapter,
		resolver:  resolver,
		layout:    layout,
		logger:    logger,
	}
}

// Open writes every section of doc to its own artifact and leaves a stub in
// its place.
func (w *wrapper) Open(doc m.Path, opts WrapOptions) (m.OpResult, error) {
	lines, markers, _, dir, err := w.load(doc)
	if err != nil {
		return m.OpResult{}, err
	}

	parsed := section.NewParser(markers, w.logger).Parse(lines)
	result := m.OpResult{Unmatched: parsed.Unmatched}

	if len(parsed.Sections) == 0 {
		result.Message = w.message("opened", doc, result)
		return result, nil
	}

	written := make(map[m.Path]struct{})

	var write func(s m.Section) error

	write = func(s m.Section) error {
		path := w.fsAdapter.JoinPath(string(dir), markers.ArtifactName(s.QualifiedName))

		if _, seen := written[path]; seen {
			result.Collisions++

			w.logger.Debug("artifact written twice", "section", s.QualifiedName, "artifact", path)
		} else {
			written[path] = struct{}{}
			result.Count++
		}

		result.Artifacts = append(result.Artifacts, path)

		if !opts.DryRun {
			body := renderArtifact(markers, dedent(s.Content, s.Indent))
			if err := w.fsAdapter.WriteFile(path, []byte(body), artifactPerm); err != nil {
				return fmt.Errorf("failed to write artifact %s: %w", path, err)
			}
		}

		for _, child := range s.Children {
			if err := write(child); err != nil {
				return err
			}
		}

		return nil
	}

	for _, s := range parsed.Sections {
		if err := write(s); err != nil {
			return m.OpResult{}, err
		}
	}

	if !opts.DryRun {
		out := section.Replace(lines, parsed.Sections, markers)
		if err := w.writeDocument(doc, out); err != nil {
			return m.OpResult{}, err
		}
	}

	result.Message = w.message("opened", doc, result)

	return result, nil
}

// Close inlines every stub of doc whose artifact exists and removes the
// consumed artifacts.
func (w *wrapper) Close(doc m.Path, opts WrapOptions) (m.OpResult, error) {
	lines, markers, docDir, _, err := w.load(doc)
	if err != nil {
		return m.OpResult{}, err
	}

	var result m.OpResult

	r := &resolution{
		wrapper: w,
		markers: markers,
		strict:  opts.Strict,
		result:  &result,
		active:  make(map[m.Path]struct{}),
	}

	out, err := r.resolve(lines, docDir)
	if err != nil {
		return m.OpResult{}, err
	}

	if result.Count == 0 {
		result.Message = w.message("closed", doc, result)
		return result, nil
	}

	if !opts.DryRun {
		if err := w.writeDocument(doc, out); err != nil {
			return m.OpResult{}, err
		}

		for _, path := range result.Artifacts {
			if err := w.fsAdapter.Remove(path); err != nil && !adapter.IsNotExist(err) {
				return m.OpResult{}, fmt.Errorf("failed to remove artifact %s: %w", path, err)
			}
		}
	}

	result.Message = w.message("closed", doc, result)

	return result, nil
}

// Status lists the inline sections and the stubs of doc in document order.
func (w *wrapper) Status(doc m.Path) ([]m.SectionStatus, error) {
	lines, markers, docDir, _, err := w.load(doc)
	if err != nil {
		return nil, err
	}

	parsed := section.NewParser(markers, w.logger).Parse(lines)
	stubs := section.FindStubs(lines, markers)

	statuses := make([]m.SectionStatus, 0, len(parsed.Sections)+len(stubs))
	si, ti := 0, 0

	for si < len(parsed.Sections) || ti < len(stubs) {
		if ti >= len(stubs) || (si < len(parsed.Sections) && parsed.Sections[si].StartLine < stubs[ti].Line) {
			s := parsed.Sections[si]
			statuses = append(statuses, m.SectionStatus{
				QualifiedName: s.QualifiedName,
				State:         m.StateInline,
				StartLine:     s.StartLine + 1,
				Lines:         s.LineCount(),
			})
			si++

			continue
		}

		stub := stubs[ti]
		path := w.fsAdapter.JoinPath(string(docDir), stub.Artifact)
		state := m.StateExtracted

		if _, err := w.fsAdapter.FileInfo(path); err != nil {
			if !adapter.IsNotExist(err) {
				return nil, fmt.Errorf("failed to stat artifact %s: %w", path, err)
			}

			state = m.StateOrphaned
		}

		qualified, ok := markers.QualifiedName(stub.Artifact)
		if !ok {
			qualified = stub.Name
		}

		statuses = append(statuses, m.SectionStatus{
			QualifiedName: qualified,
			State:         state,
			StartLine:     stub.Line + 1,
			Lines:         3,
			Artifact:      path,
		})
		ti++
	}

	return statuses, nil
}

// load reads doc and returns its lines, markers whose include lines point at
// the artifact directory, the document directory and the artifact directory.
func (w *wrapper) load(doc m.Path) ([]string, *section.Markers, m.Path, m.Path, error) {
	markers, err := section.NewMarkers(w.layout, doc)
	if err != nil {
		return nil, nil, "", "", fmt.Errorf("invalid layout: %w", err)
	}

	data, err := w.fsAdapter.ReadFile(doc)
	if err != nil {
		return nil, nil, "", "", fmt.Errorf("failed to read document %s: %w", doc, err)
	}

	docDir := m.Path(filepath.Dir(string(doc)))

	dir, err := w.artifactDir(docDir)
	if err != nil {
		return nil, nil, "", "", err
	}

	rel, err := w.fsAdapter.RelPath(docDir, dir)
	if err != nil {
		return nil, nil, "", "", fmt.Errorf("artifact directory %s is not reachable from %s: %w", dir, docDir, err)
	}

	return strings.Split(string(data), "\n"), markers.WithArtifactDir(string(rel)), docDir, dir, nil
}

func (w *wrapper) artifactDir(docDir m.Path) (m.Path, error) {
	if w.resolver != nil {
		dir, err := w.resolver.Resolve(adapter.ResourceArtifacts)
		if err == nil {
			return dir, nil
		}

		if !errors.Is(err, adapter.ErrUnknownResource) {
			return "", fmt.Errorf("failed to resolve artifact directory: %w", err)
		}

		w.logger.Debug("no artifacts resource, using the document directory", "resources", w.resolver.Names())
	}

	return docDir, nil
}

func (w *wrapper) writeDocument(doc m.Path, lines []string) error {
	perm := artifactPerm
	if info, err := w.fsAdapter.FileInfo(doc); err == nil {
		perm = info.Mode().Perm()
	}

	if err := w.fsAdapter.WriteFile(doc, []byte(strings.Join(lines, "\n")), perm); err != nil {
		return fmt.Errorf("failed to write document %s: %w", doc, err)
	}

	return nil
}

func (w *wrapper) message(verb string, doc m.Path, r m.OpResult) string {
	msg := fmt.Sprintf("%s %d artifact(s) for %s, %d skipped", verb, r.Count, doc, r.Skipped())

	var warnings []string

	if r.Unmatched > 0 {
		warnings = append(warnings, fmt.Sprintf("%d unmatched marker(s)", r.Unmatched))
	}

	if r.Missing > 0 {
		warnings = append(warnings, fmt.Sprintf("%d missing artifact(s)", r.Missing))
	}

	if r.Collisions > 0 {
		warnings = append(warnings, fmt.Sprintf("%d collision(s)", r.Collisions))
	}

	if len(warnings) > 0 {
		msg += " (" + strings.Join(warnings, ", ") + ")"
	}

	return msg
}

// resolution inlines stubs recursively for one Close call.
type resolution struct {
	*wrapper

	markers *section.Markers
	strict  bool
	result  *m.OpResult
	// active holds the artifacts currently being expanded.
	active map[m.Path]struct{}
}

// resolve inlines the stubs of lines. Include targets are relative to dir, the
// directory of the file the lines came from.
func (r *resolution) resolve(lines []string, dir m.Path) ([]string, error) {
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		stub, ok := section.StubAt(lines, i, r.markers)
		if !ok {
			out = append(out, lines[i])
			continue
		}

		content, ok, err := r.inline(stub, dir)
		if err != nil {
			return nil, err
		}

		if !ok {
			out = append(out, lines[i:i+3]...)
			i += 2

			continue
		}

		out = append(out, lines[i])
		out = append(out, indent(content, stub.Indent)...)
		out = append(out, lines[i+2])
		i += 2
	}

	return out, nil
}

func (r *resolution) inline(stub m.Stub, dir m.Path) ([]string, bool, error) {
	path := r.fsAdapter.JoinPath(string(dir), stub.Artifact)

	if _, busy := r.active[path]; busy {
		r.logger.Debug("artifact includes itself, leaving stub", "artifact", path)
		return nil, false, nil
	}

	data, err := r.fsAdapter.ReadFile(path)
	if err != nil {
		if !adapter.IsNotExist(err) {
			return nil, false, fmt.Errorf("failed to read artifact %s: %w", path, err)
		}

		if r.strict {
			return nil, false, fmt.Errorf("%w: %s", ErrMissingArtifact, path)
		}

		r.result.Missing++

		r.logger.Debug("artifact missing, leaving stub", "section", stub.Name, "artifact", path)

		return nil, false, nil
	}

	r.active[path] = struct{}{}
	defer delete(r.active, path)

	content, err := r.resolve(stripHeader(r.markers, string(data)), m.Path(filepath.Dir(string(path))))
	if err != nil {
		return nil, false, err
	}

	r.result.Count++
	r.result.Artifacts = append(r.result.Artifacts, path)

	return content, true, nil
}

func renderArtifact(markers *section.Markers, content []string) string {
	lines := append(markers.Header(), content...)
	return strings.Join(lines, "\n") + "\n"
}

func stripHeader(markers *section.Markers, text string) []string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	header := markers.Header()

	if len(lines) > 0 && lines[0] == header[0] {
		lines = lines[1:]
		if len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
			lines = lines[1:]
		}
	}

	if len(lines) == 1 && lines[0] == "" {
		return nil
	}

	return lines
}

func dedent(lines []string, prefix string) []string {
	out := make([]string, len(lines))

	for i, line := range lines {
		out[i] = strings.TrimPrefix(line, prefix)
	}

	return out
}

func indent(lines []string, prefix string) []string {
	out := make([]string, len(lines))

	for i, line := range lines {
		if line == "" {
			out[i] = line
			continue
		}

		out[i] = prefix + line
	}

	return out
}
