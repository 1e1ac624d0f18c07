package adapter

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	m "github.com/mouse-blink/splice/internal/model"
)

// ErrUnknownResource is returned for resource names with no configured directory.
var ErrUnknownResource = errors.New("unknown resource")

// Well-known resource names.
const (
	ResourceRoot      = "root"
	ResourceArtifacts = "artifacts"
	ResourceReports   = "reports"
)

// Resolver maps logical resource names to directories.
type Resolver interface {
	Resolve(name string) (m.Path, error)
	Names() []string
}

// LocalResolver resolves resources relative to a project root.
type LocalResolver struct {
	root      m.Path
	resources map[string]string
}

// NewResolver constructs a LocalResolver. Relative resource directories are
// resolved against root.
func NewResolver(root m.Path, resources map[string]string) *LocalResolver {
	copied := make(map[string]string, len(resources))
	for name, dir := range resources {
		copied[name] = dir
	}

	return &LocalResolver{root: root, resources: copied}
}

// Resolve returns the directory for name. "root" always resolves to the
// project root.
func (r *LocalResolver) Resolve(name string) (m.Path, error) {
	if name == ResourceRoot {
		return r.root, nil
	}

	dir, ok := r.resources[name]
	if !ok || dir == "" {
		return "", fmt.Errorf("%w: %s", ErrUnknownResource, name)
	}

	if filepath.IsAbs(dir) {
		return m.Path(filepath.Clean(dir)), nil
	}

	return m.Path(filepath.Join(string(r.root), dir)), nil
}

// Names lists the configured resource names, "root" included, sorted.
func (r *LocalResolver) Names() []string {
	names := []string{ResourceRoot}
	for name := range r.resources {
		if name != ResourceRoot {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}
