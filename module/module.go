/*
File    : pakhi-bhasha/module/module.go
Author  : Shafin098
Contact : shafin098@users.noreply.github.com
*/

// Package module implements Pakhi's module resolver (spec.md §4.3): a
// table keyed by canonicalized absolute path with a load-state tag, giving
// cycle detection and de-duplication from one structure (spec.md §9). No
// pack example implements cross-file imports for a tree-walking Bengali
// interpreter, so this is built fresh in the surrounding packages' idiom —
// small struct, doc comments at teacher density, errors via
// github.com/pkg/errors-wrapped *perr.Error.
package module

import (
	"path/filepath"

	"github.com/Shafin098/pakhi-bhasha/ast"
	"github.com/Shafin098/pakhi-bhasha/env"
	"github.com/Shafin098/pakhi-bhasha/perr"
)

// State tags a Module's position in its load lifecycle.
type State int

const (
	Loading State = iota
	Loaded
)

// Module is one resolved source file: its parsed AST, its top-level
// environment (populated once Loaded), and its canonical path.
type Module struct {
	Path  string
	AST   *ast.Program
	Env   *env.Environment
	State State
}

// Table is the resolver's module graph, keyed by canonical absolute path.
type Table struct {
	modules map[string]*Module
}

// NewTable builds an empty module table.
func NewTable() *Table {
	return &Table{modules: make(map[string]*Module)}
}

// Canonicalize resolves a textual module path relative to the importing
// module's directory, per spec.md §4.3 step 1.
func Canonicalize(importingDir, path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	abs, err := filepath.Abs(filepath.Join(importingDir, path))
	if err != nil {
		return "", perr.Wrap(perr.ResolveError, err, "resolve module path %q", path)
	}
	return abs, nil
}

// Begin starts resolving canonicalPath on behalf of importingPath, per
// spec.md §4.3 steps 2-4. It returns:
//   - the already-loaded *Module and fresh=false, if canonicalPath is Loaded;
//   - a ResolveError naming both files, if canonicalPath is Loading (an
//     import cycle);
//   - a fresh *Module in the Loading state and fresh=true otherwise — the
//     caller is responsible for parsing it, evaluating its top level into
//     its Env, and calling Finish.
func (t *Table) Begin(canonicalPath, importingPath string) (m *Module, fresh bool, err error) {
	if existing, ok := t.modules[canonicalPath]; ok {
		if existing.State == Loading {
			return nil, false, perr.New(perr.ResolveError,
				"cyclic import: %q imports %q, which is still loading", importingPath, canonicalPath)
		}
		return existing, false, nil
	}
	m = &Module{Path: canonicalPath, Env: env.New(nil), State: Loading}
	t.modules[canonicalPath] = m
	return m, true, nil
}

// Finish marks m Loaded once its top level has been evaluated.
func (t *Table) Finish(m *Module) {
	m.State = Loaded
}
