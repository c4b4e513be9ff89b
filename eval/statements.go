package eval

import (
	"github.com/Shafin098/pakhi-bhasha/ast"
	"github.com/Shafin098/pakhi-bhasha/env"
	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/value"
)

// evalBlockStatements runs stmts against e, hoisting ফাং declarations to
// the top of the block first (spec.md §9's resolved open question: function
// declarations are hoisted, variable declarations are not).
func (e *Evaluator) evalBlockStatements(stmts []ast.Statement, scope *env.Environment) (ctrl, error) {
	for _, stmt := range stmts {
		if fn, ok := stmt.(*ast.FunctionStatement); ok {
			scope.Declare(fn.Name.Value, &Closure{
				Name:    fn.Name.Value,
				Params:  fn.Parameters,
				Body:    fn.Body,
				Defined: scope,
			})
		}
	}

	for _, stmt := range stmts {
		if _, ok := stmt.(*ast.FunctionStatement); ok {
			continue // already bound during hoisting above
		}
		c, err := e.evalStatement(stmt, scope)
		if err != nil {
			return ctrlNone, err
		}
		if c.Kind != signalNone {
			return c, nil
		}
	}
	return ctrlNone, nil
}

func (e *Evaluator) evalStatement(stmt ast.Statement, scope *env.Environment) (ctrl, error) {
	switch s := stmt.(type) {
	case *ast.VarStatement:
		return ctrlNone, e.evalVarStatement(s, scope)
	case *ast.AssignStatement:
		return ctrlNone, e.evalAssignStatement(s, scope)
	case *ast.PrintStatement:
		return ctrlNone, e.evalPrintStatement(s, scope)
	case *ast.IfStatement:
		return e.evalIfStatement(s, scope)
	case *ast.LoopStatement:
		return e.evalLoopStatement(s, scope)
	case *ast.BreakStatement:
		return ctrl{Kind: signalBreak}, nil
	case *ast.ReturnStatement:
		return e.evalReturnStatement(s, scope)
	case *ast.ModuleStatement:
		return ctrlNone, e.evalModuleStatement(s, scope)
	case *ast.FunctionStatement:
		return ctrlNone, nil // hoisted in evalBlockStatements
	case *ast.ExpressionStatement:
		_, err := e.evalExpression(s.Expression, scope)
		return ctrlNone, err
	default:
		return ctrlNone, perr.New(perr.TypeError, "unhandled statement node %T", stmt)
	}
}

func (e *Evaluator) evalVarStatement(s *ast.VarStatement, scope *env.Environment) error {
	v, err := e.evalExpression(s.Value, scope)
	if err != nil {
		return err
	}
	if redeclared := scope.Declare(s.Name.Value, v); redeclared {
		return perr.At(perr.NameError, s.Token.Line, s.Token.Column,
			"%q is already declared in this scope", s.Name.Value)
	}
	return nil
}

func (e *Evaluator) evalAssignStatement(s *ast.AssignStatement, scope *env.Environment) error {
	v, err := e.evalExpression(s.Value, scope)
	if err != nil {
		return err
	}

	switch target := s.Target.(type) {
	case *ast.Identifier:
		if ok := scope.Assign(target.Value, v); !ok {
			return perr.At(perr.NameError, target.Token.Line, target.Token.Column,
				"%q is not bound in any enclosing scope", target.Value)
		}
		return nil
	case *ast.IndexExpression:
		return e.evalIndexAssign(target, v, scope)
	default:
		return perr.New(perr.TypeError, "invalid assignment target %T", s.Target)
	}
}

func (e *Evaluator) evalIndexAssign(target *ast.IndexExpression, v value.Value, scope *env.Environment) error {
	base, err := e.evalExpression(target.Left, scope)
	if err != nil {
		return err
	}
	idx, err := e.evalExpression(target.Index, scope)
	if err != nil {
		return err
	}

	switch b := base.(type) {
	case *value.List:
		i, ok := idx.(*value.Number)
		if !ok {
			return perr.New(perr.TypeError, "লিস্ট index must be সংখ্যা, got %s", idx.Kind())
		}
		n := int(i.Value)
		if n < 0 || n >= len(b.Items) {
			return perr.New(perr.IndexError, "লিস্ট index %d out of range (length %d)", n, len(b.Items))
		}
		b.Items[n] = v
		return nil
	case *value.Record:
		key, ok := idx.(*value.String)
		if !ok {
			return perr.New(perr.TypeError, "রেকর্ড key must be স্ট্রিং, got %s", idx.Kind())
		}
		b.Set(key.Value, v)
		return nil
	default:
		return perr.New(perr.TypeError, "cannot index into a %s", base.Kind())
	}
}

func (e *Evaluator) evalPrintStatement(s *ast.PrintStatement, scope *env.Environment) error {
	v, err := e.evalExpression(s.Value, scope)
	if err != nil {
		return err
	}
	e.print(v)
	return nil
}

func (e *Evaluator) evalIfStatement(s *ast.IfStatement, scope *env.Environment) (ctrl, error) {
	cond, err := e.evalExpression(s.Condition, scope)
	if err != nil {
		return ctrlNone, err
	}
	if value.Truthy(cond) {
		return e.evalBlockStatements(s.Consequence.Statements, env.New(scope))
	}
	if s.Alternative != nil {
		return e.evalBlockStatements(s.Alternative.Statements, env.New(scope))
	}
	return ctrlNone, nil
}

func (e *Evaluator) evalLoopStatement(s *ast.LoopStatement, scope *env.Environment) (ctrl, error) {
	for {
		c, err := e.evalBlockStatements(s.Body.Statements, env.New(scope))
		if err != nil {
			return ctrlNone, err
		}
		switch c.Kind {
		case signalBreak:
			return ctrlNone, nil
		case signalReturn:
			return c, nil
		}
	}
}

func (e *Evaluator) evalReturnStatement(s *ast.ReturnStatement, scope *env.Environment) (ctrl, error) {
	if s.Value == nil {
		return ctrl{Kind: signalReturn, Value: value.Nil}, nil
	}
	v, err := e.evalExpression(s.Value, scope)
	if err != nil {
		return ctrlNone, err
	}
	return ctrl{Kind: signalReturn, Value: v}, nil
}
