/*
File    : pakhi-bhasha/ast/ast.go
Author  : Shafin098
Contact : shafin098@users.noreply.github.com
*/

// Package ast defines Pakhi's abstract syntax tree (spec.md §3 "AST
// nodes"). Grounded on Uttam-Mahata-bhasa/ast/ast.go's Node/Statement/
// Expression interface shape (TokenLiteral/String, marker methods) rather
// than the teacher's heavier Visitor-pattern AST — a tree this shallow and
// a single-consumer evaluator don't need double dispatch, and
// Uttam-Mahata-bhasa (another Bengali-script language in the pack) already
// shows the simpler shape fits this exact domain. AST nodes carry no
// runtime values — those live in package value, built only during eval.
package ast

import (
	"strings"

	"github.com/Shafin098/pakhi-bhasha/token"
)

// Node is any AST node.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is a top-level or block-level statement node.
type Statement interface {
	Node
	statementNode()
}

// Expression is any node that yields a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of one module's AST: its statements in source order.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var b strings.Builder
	for _, s := range p.Statements {
		b.WriteString(s.String())
	}
	return b.String()
}

// Identifier is a bare name reference — a variable, parameter, function
// name, or the left side of IDENT/IDENT member access.
type Identifier struct {
	Token token.Token
	Value string
}

func (*Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
