package eval

import (
	"strings"

	"github.com/Shafin098/pakhi-bhasha/ast"
	"github.com/Shafin098/pakhi-bhasha/env"
	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/value"
)

func (e *Evaluator) evalExpression(expr ast.Expression, scope *env.Environment) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.NumberLiteral:
		return &value.Number{Value: n.Value}, nil
	case *ast.StringLiteral:
		return &value.String{Value: n.Value}, nil
	case *ast.BooleanLiteral:
		return value.FromBool(n.Value), nil
	case *ast.NullLiteral:
		return value.Nil, nil
	case *ast.ListLiteral:
		return e.evalListLiteral(n, scope)
	case *ast.RecordLiteral:
		return e.evalRecordLiteral(n, scope)
	case *ast.Identifier:
		return e.evalIdentifier(n, scope)
	case *ast.IndexExpression:
		return e.evalIndexExpression(n, scope)
	case *ast.ModuleAccess:
		return e.evalModuleAccess(n, scope)
	case *ast.PrefixExpression:
		return e.evalPrefixExpression(n, scope)
	case *ast.InfixExpression:
		return e.evalInfixExpression(n, scope)
	case *ast.CallExpression:
		return e.evalCallExpression(n, scope)
	default:
		return nil, perr.New(perr.TypeError, "unhandled expression node %T", expr)
	}
}

func (e *Evaluator) evalIdentifier(n *ast.Identifier, scope *env.Environment) (value.Value, error) {
	v, ok := scope.LookUp(n.Value)
	if !ok {
		return nil, perr.At(perr.NameError, n.Token.Line, n.Token.Column, "%q is not defined", n.Value)
	}
	if _, isModule := v.(*moduleRef); isModule {
		return nil, perr.At(perr.TypeError, n.Token.Line, n.Token.Column,
			"%q is a module and can't be used as a value", n.Value)
	}
	return v, nil
}

func (e *Evaluator) evalListLiteral(n *ast.ListLiteral, scope *env.Environment) (value.Value, error) {
	items := make([]value.Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := e.evalExpression(el, scope)
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	return &value.List{Items: items}, nil
}

func (e *Evaluator) evalRecordLiteral(n *ast.RecordLiteral, scope *env.Environment) (value.Value, error) {
	rec := value.NewRecord()
	for _, pair := range n.Pairs {
		k, err := e.evalExpression(pair.Key, scope)
		if err != nil {
			return nil, err
		}
		key, ok := k.(*value.String)
		if !ok {
			return nil, perr.New(perr.TypeError, "রেকর্ড keys must be স্ট্রিং, got %s", k.Kind())
		}
		v, err := e.evalExpression(pair.Value, scope)
		if err != nil {
			return nil, err
		}
		rec.Set(key.Value, v) // last write wins, per spec.md §4.2
	}
	return rec, nil
}

func (e *Evaluator) evalIndexExpression(n *ast.IndexExpression, scope *env.Environment) (value.Value, error) {
	base, err := e.evalExpression(n.Left, scope)
	if err != nil {
		return nil, err
	}
	idx, err := e.evalExpression(n.Index, scope)
	if err != nil {
		return nil, err
	}

	switch b := base.(type) {
	case *value.List:
		i, ok := idx.(*value.Number)
		if !ok {
			return nil, perr.New(perr.TypeError, "লিস্ট index must be সংখ্যা, got %s", idx.Kind())
		}
		n := int(i.Value)
		if n < 0 || n >= len(b.Items) {
			return nil, perr.New(perr.IndexError, "লিস্ট index %d out of range (length %d)", n, len(b.Items))
		}
		return b.Items[n], nil
	case *value.Record:
		key, ok := idx.(*value.String)
		if !ok {
			return nil, perr.New(perr.TypeError, "রেকর্ড key must be স্ট্রিং, got %s", idx.Kind())
		}
		v, ok := b.Get(key.Value)
		if !ok {
			return nil, perr.New(perr.KeyError, "রেকর্ড has no key %q", key.Value)
		}
		return v, nil
	case *value.String:
		return nil, perr.New(perr.TypeError, "স্ট্রিং is not indexable")
	default:
		return nil, perr.New(perr.TypeError, "cannot index into a %s", base.Kind())
	}
}

// evalModuleAccess resolves mod/member, per spec.md §4.2: a distinct node
// at parse time, dispatched to either module-member lookup or ordinary
// division at evaluation time depending on what Base resolves to.
func (e *Evaluator) evalModuleAccess(n *ast.ModuleAccess, scope *env.Environment) (value.Value, error) {
	baseVal, ok := scope.LookUp(n.Base.Value)
	if !ok {
		return nil, perr.At(perr.NameError, n.Base.Token.Line, n.Base.Token.Column, "%q is not defined", n.Base.Value)
	}

	mod, isModule := baseVal.(*moduleRef)
	if !isModule {
		memberVal, ok := scope.LookUp(n.Member.Value)
		if !ok {
			return nil, perr.At(perr.NameError, n.Member.Token.Line, n.Member.Token.Column, "%q is not defined", n.Member.Value)
		}
		return numericDivide(baseVal, memberVal)
	}

	v, ok := mod.Mod.Env.LookUp(n.Member.Value)
	if !ok {
		return nil, perr.At(perr.NameError, n.Member.Token.Line, n.Member.Token.Column,
			"module %q has no top-level binding %q", n.Base.Value, n.Member.Value)
	}
	return v, nil
}

func (e *Evaluator) evalPrefixExpression(n *ast.PrefixExpression, scope *env.Environment) (value.Value, error) {
	right, err := e.evalExpression(n.Right, scope)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case "-":
		num, ok := right.(*value.Number)
		if !ok {
			return nil, perr.New(perr.TypeError, "unary - requires সংখ্যা, got %s", right.Kind())
		}
		return &value.Number{Value: -num.Value}, nil
	case "!":
		return value.FromBool(!value.Truthy(right)), nil
	default:
		return nil, perr.New(perr.TypeError, "unknown unary operator %q", n.Operator)
	}
}

func (e *Evaluator) evalInfixExpression(n *ast.InfixExpression, scope *env.Environment) (value.Value, error) {
	// && and || short-circuit and return the last-evaluated operand itself
	// (truthiness-driven), not a normalized boolean — spec.md §4.4.
	if n.Operator == "&&" {
		left, err := e.evalExpression(n.Left, scope)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(left) {
			return left, nil
		}
		return e.evalExpression(n.Right, scope)
	}
	if n.Operator == "||" {
		left, err := e.evalExpression(n.Left, scope)
		if err != nil {
			return nil, err
		}
		if value.Truthy(left) {
			return left, nil
		}
		return e.evalExpression(n.Right, scope)
	}

	left, err := e.evalExpression(n.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpression(n.Right, scope)
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case "==":
		return value.FromBool(value.Equal(left, right)), nil
	case "!=":
		return value.FromBool(!value.Equal(left, right)), nil
	case "<", "<=", ">", ">=":
		return compare(n.Operator, left, right)
	case "+":
		return add(left, right)
	case "-", "*", "/", "%":
		return arithmetic(n.Operator, left, right)
	default:
		return nil, perr.New(perr.TypeError, "unknown binary operator %q", n.Operator)
	}
}

// compare implements spec.md §4.4: both operands numeric, or both string
// (lexicographic by codepoint); any other pairing errors.
func compare(op string, left, right value.Value) (value.Value, error) {
	if l, ok := left.(*value.Number); ok {
		r, ok := right.(*value.Number)
		if !ok {
			return nil, perr.New(perr.TypeError, "cannot compare %s with %s", left.Kind(), right.Kind())
		}
		return value.FromBool(numericCompare(op, l.Value, r.Value)), nil
	}
	if l, ok := left.(*value.String); ok {
		r, ok := right.(*value.String)
		if !ok {
			return nil, perr.New(perr.TypeError, "cannot compare %s with %s", left.Kind(), right.Kind())
		}
		return value.FromBool(stringCompare(op, l.Value, r.Value)), nil
	}
	return nil, perr.New(perr.TypeError, "comparison requires both operands সংখ্যা or both স্ট্রিং, got %s and %s", left.Kind(), right.Kind())
}

func numericCompare(op string, l, r float64) bool {
	switch op {
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	default:
		return l >= r
	}
}

func stringCompare(op string, l, r string) bool {
	c := strings.Compare(l, r)
	switch op {
	case "<":
		return c < 0
	case "<=":
		return c <= 0
	case ">":
		return c > 0
	default:
		return c >= 0
	}
}

// add implements spec.md §4.4's `+`: two numbers sum, two strings
// concatenate, mixed kinds error (no implicit coercion).
func add(left, right value.Value) (value.Value, error) {
	if l, ok := left.(*value.Number); ok {
		r, ok := right.(*value.Number)
		if !ok {
			return nil, perr.New(perr.TypeError, "+ requires matching operand kinds, got %s and %s", left.Kind(), right.Kind())
		}
		return &value.Number{Value: l.Value + r.Value}, nil
	}
	if l, ok := left.(*value.String); ok {
		r, ok := right.(*value.String)
		if !ok {
			return nil, perr.New(perr.TypeError, "+ requires matching operand kinds, got %s and %s", left.Kind(), right.Kind())
		}
		return &value.String{Value: l.Value + r.Value}, nil
	}
	return nil, perr.New(perr.TypeError, "+ requires two সংখ্যা or two স্ট্রিং, got %s and %s", left.Kind(), right.Kind())
}

// arithmetic implements `- * / %`, each requiring two সংখ্যা.
func arithmetic(op string, left, right value.Value) (value.Value, error) {
	l, ok := left.(*value.Number)
	if !ok {
		return nil, perr.New(perr.TypeError, "%s requires সংখ্যা operands, got %s", op, left.Kind())
	}
	r, ok := right.(*value.Number)
	if !ok {
		return nil, perr.New(perr.TypeError, "%s requires সংখ্যা operands, got %s", op, right.Kind())
	}
	switch op {
	case "-":
		return &value.Number{Value: l.Value - r.Value}, nil
	case "*":
		return &value.Number{Value: l.Value * r.Value}, nil
	case "/":
		if r.Value == 0 {
			return nil, perr.New(perr.ArithmeticError, "division by zero")
		}
		return &value.Number{Value: l.Value / r.Value}, nil
	case "%":
		if r.Value == 0 {
			return nil, perr.New(perr.ArithmeticError, "modulo by zero")
		}
		return &value.Number{Value: float64(int64(l.Value) % int64(r.Value))}, nil
	default:
		return nil, perr.New(perr.TypeError, "unknown arithmetic operator %q", op)
	}
}

// numericDivide backs the fallback path of IDENT/IDENT when Base doesn't
// resolve to a module: ordinary division, per spec.md §4.2.
func numericDivide(left, right value.Value) (value.Value, error) {
	return arithmetic("/", left, right)
}

func (e *Evaluator) evalCallExpression(n *ast.CallExpression, scope *env.Environment) (value.Value, error) {
	callee, err := e.evalExpression(n.Function, scope)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(n.Arguments))
	for i, a := range n.Arguments {
		v, err := e.evalExpression(a, scope)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *value.Builtin:
		v, err := fn.Fn(args)
		if err != nil {
			return nil, err
		}
		return v, nil
	case *Closure:
		return e.callClosure(fn, args)
	default:
		return nil, perr.New(perr.TypeError, "%s is not callable", callee.Kind())
	}
}

// callClosure runs a user function: arity must match, each argument binds
// to its parameter in a fresh scope whose parent is the closure's defining
// scope (not the caller's) — spec.md §3, §4.4.
func (e *Evaluator) callClosure(fn *Closure, args []value.Value) (value.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, perr.New(perr.ArityError, "%s expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	callScope := env.New(fn.Defined)
	for i, p := range fn.Params {
		callScope.Declare(p.Value, args[i])
	}

	c, err := e.evalBlockStatements(fn.Body.Statements, callScope)
	if err != nil {
		return nil, err
	}
	switch c.Kind {
	case signalReturn:
		return c.Value, nil
	case signalBreak:
		return nil, perr.New(perr.BreakOutsideLoop, "থামাও used outside a loop")
	default:
		return value.Nil, nil // fall-through yields শূন্য
	}
}
