package parser

import (
	"github.com/Shafin098/pakhi-bhasha/ast"
	"github.com/Shafin098/pakhi-bhasha/perr"
	"github.com/Shafin098/pakhi-bhasha/token"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Type {
	case token.NAAM:
		return p.parseVarStatement()
	case token.DEKHAO:
		return p.parsePrintStatement()
	case token.JODI:
		return p.parseIfStatement()
	case token.LOOP:
		return p.parseLoopStatement()
	case token.THAMAO:
		return p.parseBreakStatement()
	case token.FUNG:
		return p.parseFunctionStatement()
	case token.FERT:
		return p.parseReturnStatement()
	case token.MODULE:
		return p.parseModuleStatement()
	case token.IDENTIFIER:
		return p.parseIdentifierLeadStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVarStatement() (ast.Statement, error) {
	tok := p.curToken
	if err := p.expectPeek(token.IDENTIFIER); err != nil {
		return nil, err
	}
	name := p.parseIdentifier()
	if err := p.expectPeek(token.ASSIGN); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.VarStatement{Token: tok, Name: name, Value: value}, nil
}

func (p *Parser) parsePrintStatement() (ast.Statement, error) {
	tok := p.curToken
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.PrintStatement{Token: tok, Value: value}, nil
}

func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	block := &ast.BlockStatement{Token: p.curToken}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	for !p.curIs(token.RBRACE) && !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	}
	if !p.curIs(token.RBRACE) {
		return nil, perr.At(perr.ParseError, p.curToken.Line, p.curToken.Column,
			"expected %s, found %s", token.RBRACE, p.curToken.Type)
	}
	return block, nil
}

func (p *Parser) parseIfStatement() (ast.Statement, error) {
	tok := p.curToken
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	cons, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{Token: tok, Condition: cond, Consequence: cons}
	if p.peekIs(token.OTHOBA) {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.LBRACE); err != nil {
			return nil, err
		}
		alt, err := p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
		stmt.Alternative = alt
	}
	return stmt, nil
}

func (p *Parser) parseLoopStatement() (ast.Statement, error) {
	tok := p.curToken
	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.ABAR); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.LoopStatement{Token: tok, Body: body}, nil
}

func (p *Parser) parseBreakStatement() (ast.Statement, error) {
	tok := p.curToken
	if err := p.expectPeek(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.BreakStatement{Token: tok}, nil
}

func (p *Parser) parseFunctionStatement() (ast.Statement, error) {
	tok := p.curToken
	if err := p.expectPeek(token.IDENTIFIER); err != nil {
		return nil, err
	}
	name := p.parseIdentifier()
	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.FERT); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.FunctionStatement{Token: tok, Name: name, Parameters: params, Body: body}, nil
}

func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, error) {
	var params []*ast.Identifier
	if p.peekIs(token.RPAREN) {
		return params, p.nextToken()
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	params = append(params, p.parseIdentifier())
	for p.peekIs(token.COMMA) {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		params = append(params, p.parseIdentifier())
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// parseReturnStatement handles both `ফেরত EXPR ;` and bare `ফেরত ;`, plus
// the function-body terminator use of ফেরত (which parseFunctionStatement
// consumes directly via expectPeek, never reaching here).
func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	tok := p.curToken
	if p.peekIs(token.SEMI) {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		return &ast.ReturnStatement{Token: tok}, nil
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Token: tok, Value: value}, nil
}

func (p *Parser) parseModuleStatement() (ast.Statement, error) {
	tok := p.curToken
	if err := p.expectPeek(token.IDENTIFIER); err != nil {
		return nil, err
	}
	name := p.parseIdentifier()
	if err := p.expectPeek(token.ASSIGN); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.STRING); err != nil {
		return nil, err
	}
	path := p.curToken.Literal
	if err := p.expectPeek(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.ModuleStatement{Token: tok, Name: name, Path: path}, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	tok := p.curToken
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Token: tok, Expression: expr}, nil
}

// parseIdentifierLeadStatement disambiguates a leading identifier between
// an assignment statement (to a name, list index, or record key) and a
// plain expression statement: it parses a full postfix expression first,
// and only treats it as an AssignStatement if '=' immediately follows.
func (p *Parser) parseIdentifierLeadStatement() (ast.Statement, error) {
	tok := p.curToken
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if p.peekIs(token.ASSIGN) {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.SEMI); err != nil {
			return nil, err
		}
		return &ast.AssignStatement{Token: tok, Target: expr, Value: value}, nil
	}
	if err := p.expectPeek(token.SEMI); err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Token: tok, Expression: expr}, nil
}
