package ast

import (
	"strings"

	"github.com/Shafin098/pakhi-bhasha/token"
)

// NumberLiteral is a সংখ্যা literal. Value is already decoded from Bengali
// or ASCII digits by the parser (via digits.Normalize), per spec.md §4.1.
type NumberLiteral struct {
	Token token.Token
	Value float64
}

func (*NumberLiteral) expressionNode()        {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) String() string       { return n.Token.Literal }

// StringLiteral is a স্ট্রিং literal; Value has escapes already resolved.
type StringLiteral struct {
	Token token.Token
	Value string
}

func (*StringLiteral) expressionNode()        {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) String() string       { return `"` + s.Value + `"` }

// BooleanLiteral is সত্য or মিথ্যা.
type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (*BooleanLiteral) expressionNode()        {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BooleanLiteral) String() string       { return b.Token.Literal }

// NullLiteral is শূন্য used as an expression.
type NullLiteral struct {
	Token token.Token
}

func (*NullLiteral) expressionNode()        {}
func (n *NullLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NullLiteral) String() string       { return "শূন্য" }

// ListLiteral is `[e1, e2, …]`.
type ListLiteral struct {
	Token    token.Token // '['
	Elements []Expression
}

func (*ListLiteral) expressionNode()        {}
func (l *ListLiteral) TokenLiteral() string { return l.Token.Literal }
func (l *ListLiteral) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// RecordPair is one `"key" -> value` entry of a RecordLiteral.
type RecordPair struct {
	Key   Expression
	Value Expression
}

// RecordLiteral is `@{ "k" -> v, … }`. Duplicate keys are legal at parse
// time (last write wins at eval time per spec.md §4.2).
type RecordLiteral struct {
	Token token.Token // '@'
	Pairs []RecordPair
}

func (*RecordLiteral) expressionNode()        {}
func (r *RecordLiteral) TokenLiteral() string { return r.Token.Literal }
func (r *RecordLiteral) String() string {
	parts := make([]string, len(r.Pairs))
	for i, p := range r.Pairs {
		parts[i] = p.Key.String() + " -> " + p.Value.String()
	}
	return "@{" + strings.Join(parts, ", ") + "}"
}

// IndexExpression is `e[i]`, used both for লিস্ট and রেকর্ড access.
type IndexExpression struct {
	Token token.Token // '['
	Left  Expression
	Index Expression
}

func (*IndexExpression) expressionNode()        {}
func (i *IndexExpression) TokenLiteral() string { return i.Token.Literal }
func (i *IndexExpression) String() string {
	return i.Left.String() + "[" + i.Index.String() + "]"
}

// ModuleAccess is the `IDENT/IDENT` postfix form spec.md §4.2 carves out of
// plain division: parsed whenever a bare identifier is immediately followed
// by '/' and another bare identifier. Evaluated as division instead of
// member access if Base doesn't resolve to a module binding (spec.md §4.2:
// "resolution is by the left operand's kind at evaluation time").
type ModuleAccess struct {
	Token  token.Token // '/'
	Base   *Identifier
	Member *Identifier
}

func (*ModuleAccess) expressionNode()        {}
func (m *ModuleAccess) TokenLiteral() string { return m.Token.Literal }
func (m *ModuleAccess) String() string       { return m.Base.String() + "/" + m.Member.String() }

// PrefixExpression is unary `-` or `!`.
type PrefixExpression struct {
	Token    token.Token
	Operator string
	Right    Expression
}

func (*PrefixExpression) expressionNode()        {}
func (p *PrefixExpression) TokenLiteral() string { return p.Token.Literal }
func (p *PrefixExpression) String() string       { return "(" + p.Operator + p.Right.String() + ")" }

// InfixExpression is any binary operator: arithmetic, comparison, equality,
// logical, or `+` used for string concatenation.
type InfixExpression struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (*InfixExpression) expressionNode()        {}
func (i *InfixExpression) TokenLiteral() string { return i.Token.Literal }
func (i *InfixExpression) String() string {
	return "(" + i.Left.String() + " " + i.Operator + " " + i.Right.String() + ")"
}

// CallExpression is `callee(args...)`.
type CallExpression struct {
	Token     token.Token // '('
	Function  Expression
	Arguments []Expression
}

func (*CallExpression) expressionNode()        {}
func (c *CallExpression) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpression) String() string {
	parts := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		parts[i] = a.String()
	}
	return c.Function.String() + "(" + strings.Join(parts, ", ") + ")"
}
