package host

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// MemoryHost is an in-memory Host used by the eval, builtin and host tests so
// they never touch the real filesystem. Paths are plain map keys — callers
// are expected to use consistent absolute-looking keys (e.g. "/a/b.pakhi").
type MemoryHost struct {
	Files   map[string]string
	Lines   []string
	lineIdx int
	Plat    string
}

// NewMemoryHost builds an empty MemoryHost; populate Files directly.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{Files: make(map[string]string), Plat: "linux"}
}

func (m *MemoryHost) ReadFile(p string) ([]byte, error) {
	content, ok := m.Files[p]
	if !ok {
		return nil, errors.Errorf("no such file %q", p)
	}
	return []byte(content), nil
}

func (m *MemoryHost) ReadLine() (string, error) {
	if m.lineIdx >= len(m.Lines) {
		return "", errors.New("EOF")
	}
	line := m.Lines[m.lineIdx]
	m.lineIdx++
	return line, nil
}

func (m *MemoryHost) WriteFile(p string, data []byte) error {
	m.Files[p] = string(data)
	return nil
}

func (m *MemoryHost) DeleteFile(p string) error {
	if _, ok := m.Files[p]; !ok {
		return errors.Errorf("no such file %q", p)
	}
	delete(m.Files, p)
	return nil
}

func (m *MemoryHost) Mkdir(p string) error {
	return nil
}

func (m *MemoryHost) ReadDir(p string) ([]string, error) {
	prefix := strings.TrimSuffix(p, "/") + "/"
	seen := make(map[string]bool)
	for f := range m.Files {
		if !strings.HasPrefix(f, prefix) {
			continue
		}
		rest := strings.TrimPrefix(f, prefix)
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			rest = rest[:idx]
		}
		seen[rest] = true
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryHost) DeleteDir(p string) error {
	prefix := strings.TrimSuffix(p, "/") + "/"
	for f := range m.Files {
		if strings.HasPrefix(f, prefix) {
			delete(m.Files, f)
		}
	}
	return nil
}

func (m *MemoryHost) Stat(p string) (Kind, error) {
	if _, ok := m.Files[p]; ok {
		return File, nil
	}
	prefix := strings.TrimSuffix(p, "/") + "/"
	for f := range m.Files {
		if strings.HasPrefix(f, prefix) {
			return Directory, nil
		}
	}
	return "", errors.Errorf("no such path %q", p)
}

func (m *MemoryHost) Platform() string {
	return m.Plat
}
