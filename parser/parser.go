/*
File    : pakhi-bhasha/parser/parser.go
Author  : Shafin098
Contact : shafin098@users.noreply.github.com
*/

// Package parser turns a token stream into a module ast.Program (spec.md
// §4.2). Grounded on Uttam-Mahata-bhasa/parser/parser.go's Pratt-style
// prefix/infix function-table structure (registerPrefix/registerInfix,
// curToken/peekToken, precedence climbing via a token->precedence table),
// adapted to Pakhi's own grammar and to the lexer's fallible NextToken.
package parser

import (
	"strconv"

	"github.com/Shafin098/pakhi-bhasha/ast"
	"github.com/Shafin098/pakhi-bhasha/digits"
	"github.com/Shafin098/pakhi-bhasha/lexer"
	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/token"
)

// Precedence levels, lowest to highest, per spec.md §4.2.
const (
	_ int = iota
	LOWEST
	OR_PREC
	AND_PREC
	EQUALITY
	COMPARISON
	ADDITIVE
	MULTIPLICATIVE
	PREFIX
	POSTFIX
)

var precedences = map[token.Type]int{
	token.OR:       OR_PREC,
	token.AND:      AND_PREC,
	token.EQ:       EQUALITY,
	token.NEQ:      EQUALITY,
	token.LT:       COMPARISON,
	token.LE:       COMPARISON,
	token.GT:       COMPARISON,
	token.GE:       COMPARISON,
	token.PLUS:     ADDITIVE,
	token.MINUS:    ADDITIVE,
	token.STAR:     MULTIPLICATIVE,
	token.SLASH:    MULTIPLICATIVE,
	token.PERCENT:  MULTIPLICATIVE,
	token.LPAREN:   POSTFIX,
	token.LBRACKET: POSTFIX,
}

type (
	prefixParseFn func() (ast.Expression, error)
	infixParseFn  func(ast.Expression) (ast.Expression, error)
)

// Parser consumes one module's token stream and builds its AST. It stops at
// the first error, matching spec.md §4.2: a parse error "aborts the
// module".
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// New builds a Parser reading from l and primes cur/peek. err is non-nil
// only if the lexer fails on one of the first two tokens.
func New(l *lexer.Lexer) (*Parser, error) {
	p := &Parser{l: l}

	p.prefixFns = map[token.Type]prefixParseFn{
		token.IDENTIFIER: p.parseIdentifierOrModuleAccess,
		token.NUMBER:     p.parseNumberLiteral,
		token.STRING:     p.parseStringLiteral,
		token.SHOTTO:     p.parseBooleanLiteral,
		token.MITHYA:     p.parseBooleanLiteral,
		token.SHUNNO:     p.parseNullLiteral,
		token.MINUS:      p.parsePrefixExpression,
		token.NOT:        p.parsePrefixExpression,
		token.LPAREN:     p.parseGroupedExpression,
		token.LBRACKET:   p.parseListLiteral,
		token.AT:         p.parseRecordLiteral,
	}

	p.infixFns = map[token.Type]infixParseFn{
		token.OR:       p.parseInfixExpression,
		token.AND:      p.parseInfixExpression,
		token.EQ:       p.parseInfixExpression,
		token.NEQ:      p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.LE:       p.parseInfixExpression,
		token.GT:       p.parseInfixExpression,
		token.GE:       p.parseInfixExpression,
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.STAR:     p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.PERCENT:  p.parseInfixExpression,
		token.LPAREN:   p.parseCallExpression,
		token.LBRACKET: p.parseIndexExpression,
	}

	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) nextToken() error {
	p.curToken = p.peekToken
	tok, err := p.l.NextToken()
	if err != nil {
		return err
	}
	p.peekToken = tok
	return nil
}

func (p *Parser) curIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.Type) error {
	if !p.peekIs(t) {
		return perr.At(perr.ParseError, p.peekToken.Line, p.peekToken.Column,
			"expected %s, found %s %q", t, p.peekToken.Type, p.peekToken.Literal)
	}
	return p.nextToken()
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram parses the entire token stream, stopping at the first error.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	}
	return prog, nil
}

func (p *Parser) noPrefixParseFnError() error {
	return perr.At(perr.ParseError, p.curToken.Line, p.curToken.Column,
		"unexpected token %s %q", p.curToken.Type, p.curToken.Literal)
}

func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	prefix, ok := p.prefixFns[p.curToken.Type]
	if !ok {
		return nil, p.noPrefixParseFnError()
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for !p.peekIs(token.SEMI) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekToken.Type]
		if !ok {
			return left, nil
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseNumberLiteral() (ast.Expression, error) {
	tok := p.curToken
	f, err := strconv.ParseFloat(digits.Normalize(tok.Literal), 64)
	if err != nil {
		return nil, perr.At(perr.ParseError, tok.Line, tok.Column, "invalid number %q", tok.Literal)
	}
	return &ast.NumberLiteral{Token: tok, Value: f}, nil
}

func (p *Parser) parseStringLiteral() (ast.Expression, error) {
	return &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Literal}, nil
}

func (p *Parser) parseBooleanLiteral() (ast.Expression, error) {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curToken.Type == token.SHOTTO}, nil
}

func (p *Parser) parseNullLiteral() (ast.Expression, error) {
	return &ast.NullLiteral{Token: p.curToken}, nil
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

// parseIdentifierOrModuleAccess implements spec.md §4.2's postfix carve-out:
// a bare identifier immediately followed by '/' and another bare identifier
// is a ModuleAccess node, not the start of a division expression. Anything
// else after the identifier falls through to ordinary infix parsing (so
// `a/2` or `a/(b)` is a normal division InfixExpression).
func (p *Parser) parseIdentifierOrModuleAccess() (ast.Expression, error) {
	base := p.parseIdentifier()
	if p.peekIs(token.SLASH) {
		slashTok := p.peekToken
		savedCur, savedPeek, savedLexer := p.curToken, p.peekToken, *p.l
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if p.peekIs(token.IDENTIFIER) {
			if err := p.nextToken(); err != nil {
				return nil, err
			}
			member := p.parseIdentifier()
			return &ast.ModuleAccess{Token: slashTok, Base: base, Member: member}, nil
		}
		p.curToken, p.peekToken, *p.l = savedCur, savedPeek, savedLexer
	}
	return base, nil
}

func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	tok := p.curToken
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}
	return &ast.PrefixExpression{Token: tok, Operator: tok.Literal, Right: right}, nil
}

func (p *Parser) parseInfixExpression(left ast.Expression) (ast.Expression, error) {
	tok := p.curToken
	precedence := p.curPrecedence()
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	return &ast.InfixExpression{Token: tok, Left: left, Operator: tok.Literal, Right: right}, nil
}

func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseListLiteral() (ast.Expression, error) {
	tok := p.curToken
	elems, err := p.parseExpressionList(token.RBRACKET)
	if err != nil {
		return nil, err
	}
	return &ast.ListLiteral{Token: tok, Elements: elems}, nil
}

// parseExpressionList parses a comma-separated EXPR list up to and
// including end, with curToken left on end.
func (p *Parser) parseExpressionList(end token.Type) ([]ast.Expression, error) {
	var list []ast.Expression
	if p.peekIs(end) {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return list, nil
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	list = append(list, expr)
	for p.peekIs(token.COMMA) {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
	}
	if err := p.expectPeek(end); err != nil {
		return nil, err
	}
	return list, nil
}

func (p *Parser) parseRecordLiteral() (ast.Expression, error) {
	tok := p.curToken
	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	var pairs []ast.RecordPair
	for !p.peekIs(token.RBRACE) {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		key, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.ARROW); err != nil {
			return nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		val, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, ast.RecordPair{Key: key, Value: val})
		if p.peekIs(token.COMMA) {
			if err := p.nextToken(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectPeek(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.RecordLiteral{Token: tok, Pairs: pairs}, nil
}

func (p *Parser) parseIndexExpression(left ast.Expression) (ast.Expression, error) {
	tok := p.curToken
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	idx, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.IndexExpression{Token: tok, Left: left, Index: idx}, nil
}

func (p *Parser) parseCallExpression(fn ast.Expression) (ast.Expression, error) {
	tok := p.curToken
	args, err := p.parseExpressionList(token.RPAREN)
	if err != nil {
		return nil, err
	}
	return &ast.CallExpression{Token: tok, Function: fn, Arguments: args}, nil
}
