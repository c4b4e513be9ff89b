/*
File    : pakhi-bhasha/eval/eval.go
Author  : Shafin098
Contact : shafin098@users.noreply.github.com
*/

// Package eval tree-walks a module's AST against a lexically scoped
// environment (spec.md §4.4). Grounded on
// akashmaji946-go-mix/eval/evaluator.go's Evaluator struct shape (holding a
// Writer for built-in output, a Reader for built-in input, and the root
// scope) and its per-concern file split (eval_statements.go,
// eval_controls.go, eval_loops.go, eval_conditionals.go,
// eval_expressions.go), adapted from the teacher's sentinel-Error-object
// convention to Go's native error return: ERROR(message, position) in
// spec.md §4.4 already means "unwind the whole interpreter", which is what
// a Go error return does without any IsError() check at every call site.
package eval

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Shafin098/pakhi-bhasha/ast"
	"github.com/Shafin098/pakhi-bhasha/builtin"
	"github.com/Shafin098/pakhi-bhasha/env"
	"github.com/Shafin098/pakhi-bhasha/host"
	"github.com/Shafin098/pakhi-bhasha/lexer"
	"github.com/Shafin098/pakhi-bhasha/module"
	"github.com/Shafin098/pakhi-bhasha/parser"
	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/value"
)

// signal is the non-local control-flow tag spec.md §4.4 names: BREAK and
// RETURN propagate upward through statement evaluation without being
// values. ERROR is not modeled here — it is the ordinary Go error return of
// every evalX method, since an *Error always unwinds the whole interpreter
// anyway (spec.md §9's rationale for "explicit signal, not exception" is
// satisfied by Go's own error-return unwinding).
type signal int

const (
	signalNone signal = iota
	signalBreak
	signalReturn
)

// ctrl carries a non-local control signal plus, for RETURN, the value being
// returned. Every statement-evaluation method returns (ctrl, error); a
// non-none ctrl.Kind must be checked and propagated by every caller that can
// contain a loop body or function body.
type ctrl struct {
	Kind  signal
	Value value.Value // meaningful only when Kind == signalReturn
}

var ctrlNone = ctrl{Kind: signalNone}

// Evaluator holds everything one interpreter run needs: the host capability
// seam, the cross-module table, and where built-in output goes.
type Evaluator struct {
	Host   host.Host
	Table  *module.Table
	Writer io.Writer

	// loading tracks the canonical path of the module currently being
	// loaded, as a stack so a মডিউল statement nested inside an imported
	// module's own মডিউল statements still resolves relative to its own
	// file, and a cycle error can name the innermost importer, per
	// spec.md §4.3 step 1 and §4.3 step 3. Safe as a single mutable stack
	// because evaluation is strictly single-threaded and synchronous
	// (spec.md §5).
	loading []string
}

// New builds an Evaluator that writes দেখাও output to os.Stdout.
func New(h host.Host) *Evaluator {
	return &Evaluator{Host: h, Table: module.NewTable(), Writer: os.Stdout}
}

func (e *Evaluator) currentPath() string { return e.loading[len(e.loading)-1] }
func (e *Evaluator) currentDir() string  { return filepath.Dir(e.currentPath()) }

func (e *Evaluator) pushLoading(path string) { e.loading = append(e.loading, path) }
func (e *Evaluator) popLoading()             { e.loading = e.loading[:len(e.loading)-1] }

// RunFile resolves path as the root module: reads it via Host, lexes,
// parses, and evaluates its top level. Used by cmd/pakhi; মডিউল statements
// (including those typed at the REPL) go through loadModule directly.
func (e *Evaluator) RunFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return perr.Wrap(perr.ResolveError, err, "resolve root module path %q", path)
	}
	_, _, err = e.loadModule(abs, abs)
	return err
}

// loadModule is the single entry point the module resolver and RunFile both
// go through: begin the load (cycle/dedup check), and if fresh, read, lex,
// parse, and evaluate its top level, per spec.md §4.3 steps 1-4.
func (e *Evaluator) loadModule(canonicalPath, importingPath string) (*module.Module, bool, error) {
	m, fresh, err := e.Table.Begin(canonicalPath, importingPath)
	if err != nil {
		return nil, false, err
	}
	if !fresh {
		return m, false, nil
	}

	src, err := e.Host.ReadFile(canonicalPath)
	if err != nil {
		return nil, false, perr.Wrap(perr.ResolveError, err, "could not read module %q", canonicalPath)
	}

	l := lexer.New(string(src))
	p, err := parser.New(l)
	if err != nil {
		return nil, false, err
	}
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, false, err
	}
	m.AST = prog

	dir := filepath.Dir(canonicalPath) + string(filepath.Separator)
	builtin.Install(m.Env, e.Host, dir)

	e.pushLoading(canonicalPath)
	c, err := e.evalBlockStatements(prog.Statements, m.Env)
	e.popLoading()
	if err != nil {
		return nil, false, err
	}
	switch c.Kind {
	case signalBreak:
		return nil, false, perr.New(perr.BreakOutsideLoop, "থামাও used outside a loop")
	case signalReturn:
		return nil, false, perr.New(perr.ReturnOutsideFunction, "ফেরত used outside a function")
	}

	e.Table.Finish(m)
	return m, true, nil
}

// print renders v in canonical form followed by a newline, per spec.md
// §4.4's দেখাও semantics.
func (e *Evaluator) print(v value.Value) {
	fmt.Fprintln(e.Writer, v.String())
}

// NewSession builds a persistent top-level Environment with built-ins
// installed, rooted at dir — the shape the REPL needs to keep one scope
// alive across many individually-lexed-and-parsed lines.
func (e *Evaluator) NewSession(dir string) *env.Environment {
	scope := env.New(nil)
	builtin.Install(scope, e.Host, dir+string(filepath.Separator))
	return scope
}

// EvalLine lexes and parses src as a standalone program and evaluates its
// statements against scope, resolving any মডিউল statement it contains
// relative to dir. Used by the REPL, where each line is its own parse unit
// but shares one long-lived environment. If the line's last statement is a
// bare expression, its value is returned so the REPL can echo it (দেখাও is
// still required for any output a file-mode program relies on).
func (e *Evaluator) EvalLine(src, dir string, scope *env.Environment) (value.Value, error) {
	l := lexer.New(src)
	p, err := parser.New(l)
	if err != nil {
		return nil, err
	}
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, err
	}

	e.pushLoading(filepath.Join(dir, "<repl>"))
	defer e.popLoading()

	for _, stmt := range prog.Statements {
		if fn, ok := stmt.(*ast.FunctionStatement); ok {
			scope.Declare(fn.Name.Value, &Closure{
				Name:    fn.Name.Value,
				Params:  fn.Parameters,
				Body:    fn.Body,
				Defined: scope,
			})
		}
	}

	var last value.Value
	for _, stmt := range prog.Statements {
		if _, ok := stmt.(*ast.FunctionStatement); ok {
			last = nil
			continue
		}
		if exprStmt, ok := stmt.(*ast.ExpressionStatement); ok {
			v, err := e.evalExpression(exprStmt.Expression, scope)
			if err != nil {
				return nil, err
			}
			last = v
			continue
		}
		last = nil
		c, err := e.evalStatement(stmt, scope)
		if err != nil {
			return nil, err
		}
		switch c.Kind {
		case signalBreak:
			return nil, perr.New(perr.BreakOutsideLoop, "থামাও used outside a loop")
		case signalReturn:
			return nil, perr.New(perr.ReturnOutsideFunction, "ফেরত used outside a function")
		}
	}
	return last, nil
}
