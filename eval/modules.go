package eval

import (
	"github.com/Shafin098/pakhi-bhasha/ast"
	"github.com/Shafin098/pakhi-bhasha/env"
	"github.com/Shafin098/pakhi-bhasha/module"
	"github.com/Shafin098/pakhi-bhasha/perr"
)

// evalModuleStatement implements spec.md §4.3: canonicalize the path
// relative to the current module's directory, then load-or-reuse it and
// bind the result under a sentinel moduleRef value so it can only be used
// in IDENT/IDENT positions.
func (e *Evaluator) evalModuleStatement(s *ast.ModuleStatement, scope *env.Environment) error {
	canonical, err := module.Canonicalize(e.currentDir(), s.Path)
	if err != nil {
		return err
	}

	m, _, err := e.loadModule(canonical, e.currentPath())
	if err != nil {
		return err
	}

	if redeclared := scope.Declare(s.Name.Value, &moduleRef{Path: canonical, Mod: m}); redeclared {
		return perr.At(perr.NameError, s.Token.Line, s.Token.Column,
			"%q is already declared in this scope", s.Name.Value)
	}
	return nil
}
