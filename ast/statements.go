package ast

import (
	"strings"

	"github.com/Shafin098/pakhi-bhasha/token"
)

// VarStatement is `নাম IDENT = EXPR ;`.
type VarStatement struct {
	Token token.Token // 'নাম'
	Name  *Identifier
	Value Expression
}

func (*VarStatement) statementNode()        {}
func (v *VarStatement) TokenLiteral() string { return v.Token.Literal }
func (v *VarStatement) String() string {
	return "নাম " + v.Name.String() + " = " + v.Value.String() + ";"
}

// AssignStatement is assignment to a name, a list index, or a record key.
// Target is either an *Identifier or an *IndexExpression.
type AssignStatement struct {
	Token  token.Token // '='
	Target Expression
	Value  Expression
}

func (*AssignStatement) statementNode()        {}
func (a *AssignStatement) TokenLiteral() string { return a.Token.Literal }
func (a *AssignStatement) String() string {
	return a.Target.String() + " = " + a.Value.String() + ";"
}

// PrintStatement is `দেখাও EXPR ;`.
type PrintStatement struct {
	Token token.Token // 'দেখাও'
	Value Expression
}

func (*PrintStatement) statementNode()        {}
func (p *PrintStatement) TokenLiteral() string { return p.Token.Literal }
func (p *PrintStatement) String() string       { return "দেখাও " + p.Value.String() + ";" }

// BlockStatement is a brace-delimited statement sequence.
type BlockStatement struct {
	Token      token.Token // '{'
	Statements []Statement
}

func (*BlockStatement) statementNode()        {}
func (b *BlockStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BlockStatement) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for _, s := range b.Statements {
		sb.WriteString(s.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// IfStatement is `যদি EXPR { … } [ অথবা { … } ]`.
type IfStatement struct {
	Token       token.Token // 'যদি'
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // nil when the অথবা branch is absent
}

func (*IfStatement) statementNode()        {}
func (i *IfStatement) TokenLiteral() string { return i.Token.Literal }
func (i *IfStatement) String() string {
	var sb strings.Builder
	sb.WriteString("যদি " + i.Condition.String() + " " + i.Consequence.String())
	if i.Alternative != nil {
		sb.WriteString(" অথবা " + i.Alternative.String())
	}
	return sb.String()
}

// LoopStatement is `লুপ { … } আবার ;` — unconditional, exited only via
// থামাও or a return.
type LoopStatement struct {
	Token token.Token // 'লুপ'
	Body  *BlockStatement
}

func (*LoopStatement) statementNode()        {}
func (l *LoopStatement) TokenLiteral() string { return l.Token.Literal }
func (l *LoopStatement) String() string       { return "লুপ " + l.Body.String() + " আবার;" }

// BreakStatement is `থামাও ;`.
type BreakStatement struct {
	Token token.Token
}

func (*BreakStatement) statementNode()        {}
func (b *BreakStatement) TokenLiteral() string { return b.Token.Literal }
func (b *BreakStatement) String() string       { return "থামাও;" }

// FunctionStatement is `ফাং IDENT ( params ) { … } ফেরত ;`.
type FunctionStatement struct {
	Token      token.Token // 'ফাং'
	Name       *Identifier
	Parameters []*Identifier
	Body       *BlockStatement
}

func (*FunctionStatement) statementNode()        {}
func (f *FunctionStatement) TokenLiteral() string { return f.Token.Literal }
func (f *FunctionStatement) String() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	return "ফাং " + f.Name.String() + "(" + strings.Join(params, ", ") + ") " + f.Body.String() + " ফেরত;"
}

// ReturnStatement is `ফেরত EXPR ;` or bare `ফেরত ;` (Value is nil, meaning
// শূন্য per the resolved open question in spec.md §9).
type ReturnStatement struct {
	Token token.Token // 'ফেরত'
	Value Expression  // nil for a bare return
}

func (*ReturnStatement) statementNode()        {}
func (r *ReturnStatement) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStatement) String() string {
	if r.Value == nil {
		return "ফেরত;"
	}
	return "ফেরত " + r.Value.String() + ";"
}

// ModuleStatement is `মডিউল IDENT = "PATH" ;`.
type ModuleStatement struct {
	Token token.Token // 'মডিউল'
	Name  *Identifier
	Path  string
}

func (*ModuleStatement) statementNode()        {}
func (m *ModuleStatement) TokenLiteral() string { return m.Token.Literal }
func (m *ModuleStatement) String() string {
	return "মডিউল " + m.Name.String() + " = \"" + m.Path + "\";"
}

// ExpressionStatement wraps an expression evaluated for effect.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (*ExpressionStatement) statementNode()        {}
func (e *ExpressionStatement) TokenLiteral() string { return e.Token.Literal }
func (e *ExpressionStatement) String() string       { return e.Expression.String() + ";" }
