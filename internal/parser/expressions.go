package parser

import (
	"strconv"

	"github.com/lenticularis39/epica/internal/ast"
	"github.com/lenticularis39/epica/internal/token"
)

// parseExpression is the Pratt-parser core: it parses a prefix expression
// then repeatedly folds in infix operators whose precedence exceeds the
// caller's floor. PRE: curToken is the first token of the expression.
// POST: curToken is the expression's last token.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.addError("no prefix parse function for %s (%q)", p.curToken.Type, p.curToken.Literal)
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(token.SEMICOLON) && precedence < getPrecedence(p.peekToken.Type) {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifierOrCall() ast.Expression {
	begin := p.curToken.Pos
	name := p.curToken.Literal

	if p.peekTokenIs(token.LPAREN) {
		p.nextToken() // consume '('
		args, ok := p.parseArgumentList()
		if !ok {
			return nil
		}
		return ast.NewCallExpr(p.loc(begin), name, args)
	}

	return ast.NewIdentifier(p.loc(begin), name)
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	begin := p.curToken.Pos
	v, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addError("invalid integer literal %q: %s", p.curToken.Literal, err)
		return nil
	}
	return ast.NewInteger(p.loc(begin), v)
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	begin := p.curToken.Pos
	return ast.NewBoolean(p.loc(begin), p.curTokenIs(token.TRUE))
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	begin := p.curToken.Pos
	var kind ast.UnOpKind
	switch p.curToken.Type {
	case token.MINUS:
		kind = ast.Neg
	case token.TILDE:
		kind = ast.Not
	case token.NOT:
		kind = ast.LogNot
	}

	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}
	return ast.NewUnOp(p.loc(begin), kind, operand)
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	begin := left.Loc()
	opToken := p.curToken
	kind, ok := binOpKinds[opToken.Type]
	if !ok {
		p.addError("unknown binary operator %s", opToken.Type)
		return nil
	}

	prec := getPrecedence(opToken.Type)
	p.nextToken()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}

	loc := ast.Location{
		File: begin.File, BeginLine: begin.BeginLine, BeginCol: begin.BeginCol,
		EndLine: p.curToken.Pos.Line, EndCol: p.curToken.Pos.Column,
	}
	return ast.NewBinOp(loc, kind, left, right)
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}
