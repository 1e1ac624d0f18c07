package section

import (
	m "github.com/mouse-blink/splice/internal/model"
)

// FindStubs returns every begin/include/end triple in lines, in order.
func FindStubs(lines []string, markers *Markers) []m.Stub {
	var stubs []m.Stub

	for i := 0; i+2 < len(lines); i++ {
		stub, ok := StubAt(lines, i, markers)
		if !ok {
			continue
		}

		stubs = append(stubs, stub)
		i += 2
	}

	return stubs
}

// StubAt reports whether a stub starts at line i.
func StubAt(lines []string, i int, markers *Markers) (m.Stub, bool) {
	if i < 0 || i+2 >= len(lines) {
		return m.Stub{}, false
	}

	name, indent, ok := markers.Begin(lines[i])
	if !ok {
		return m.Stub{}, false
	}

	file, ok := markers.Include(lines[i+1])
	if !ok {
		return m.Stub{}, false
	}

	endName, ok := markers.End(lines[i+2])
	if !ok || endName != name {
		return m.Stub{}, false
	}

	return m.Stub{Name: name, Indent: indent, Line: i, Artifact: file}, true
}
