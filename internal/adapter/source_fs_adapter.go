// Package adapter contains the filesystem, report and resource adapters the
// domain layer relies on.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	ignore "github.com/sabhiram/go-gitignore"

	m "github.com/mouse-blink/splice/internal/model"
)

// ProjectMarkers are the files whose presence marks a project root.
var ProjectMarkers = []string{".splice.yaml", ".splice.yml", ".git"}

// SourceExtensions lists the file extensions ranked by default.
var SourceExtensions = map[string]struct{}{
	".c": {}, ".cc": {}, ".cpp": {}, ".cs": {}, ".go": {}, ".h": {}, ".hpp": {},
	".java": {}, ".js": {}, ".jsx": {}, ".kt": {}, ".mjs": {}, ".php": {},
	".rs": {}, ".scala": {}, ".swift": {}, ".ts": {}, ".tsx": {},
}

var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
	"vendor":       {},
	"dist":         {},
	"build":        {},
	"target":       {},
}

// Filter narrows the files returned by Get. Patterns are gobwas/glob patterns
// matched against slash-separated paths relative to the walked root.
type Filter struct {
	Include []string
	Exclude []string
}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on. It hides direct `os` access so the workflow logic can be tested
// without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get collects source files under the roots. A root ending in "/..." is
	// walked recursively.
	Get(roots []m.Path, filter Filter) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a whole file.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces a whole file, creating parent directories as needed.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Remove deletes a single file.
	Remove(path m.Path) error

	// FileInfo returns metadata for a path so the domain can check existence.
	FileInfo(path m.Path) (os.FileInfo, error)

	// FindProjectRoot walks up from startPath looking for a project marker.
	FindProjectRoot(startPath m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects source files for the provided roots. Results are absolute,
// de-duplicated and sorted.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, filter Filter) ([]m.Path, error) {
	if len(roots) == 0 {
		return []m.Path{}, nil
	}

	include, err := compileGlobs(filter.Include)
	if err != nil {
		return nil, err
	}

	exclude, err := compileGlobs(filter.Exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[m.Path]struct{})

	var sources []m.Path

	add := func(path string) {
		p := m.Path(path)
		if _, exists := seen[p]; exists {
			return
		}

		seen[p] = struct{}{}
		sources = append(sources, p)
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(rootPath)
			continue
		}

		gi := loadGitignore(rootPath)

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			rel, relErr := filepath.Rel(rootPath, path)
			if relErr != nil || rel == "." {
				return nil //nolint:nilerr // The root itself is never a candidate.
			}

			rel = filepath.ToSlash(rel)

			if info.IsDir() {
				if _, skip := skipDirs[info.Name()]; skip {
					return filepath.SkipDir
				}

				if gi != nil && gi.MatchesPath(rel+"/") {
					return filepath.SkipDir
				}

				return nil
			}

			if !a.accepts(rel, gi, include, exclude) {
				return nil
			}

			add(path)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	return sources, nil
}

func (a *LocalSourceFSAdapter) accepts(rel string, gi *ignore.GitIgnore, include, exclude []glob.Glob) bool {
	if gi != nil && gi.MatchesPath(rel) {
		return false
	}

	for _, g := range exclude {
		if g.Match(rel) {
			return false
		}
	}

	if len(include) == 0 {
		_, ok := SourceExtensions[strings.ToLower(filepath.Ext(rel))]
		return ok
	}

	for _, g := range include {
		if g.Match(rel) {
			return true
		}
	}

	return false
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// Remove deletes a single file.
func (a *LocalSourceFSAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// FindProjectRoot searches for a project marker walking up the directory tree.
func (a *LocalSourceFSAdapter) FindProjectRoot(startPath m.Path) (m.Path, error) {
	dir := string(startPath)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		for _, marker := range ProjectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return m.Path(dir), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no project marker found in any parent directory of %s", startPath)
		}

		dir = parent
	}
}

// RelPath returns the relative path from base to target. Relative inputs are
// taken from the working directory.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	absBase, err := filepath.Abs(string(base))
	if err != nil {
		return "", err
	}

	absTarget, err := filepath.Abs(string(target))
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// IsNotExist reports whether err means the file does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		globs = append(globs, g)
	}

	return globs, nil
}

func loadGitignore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}

	return gi
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
