package parser

import (
	"github.com/lenticularis39/epica/internal/ast"
	"github.com/lenticularis39/epica/internal/token"
)

// parseBlock parses "{ statement* }". PRE: curToken is LBRACE.
// POST: curToken is RBRACE.
func (p *Parser) parseBlock() *ast.Block {
	begin := p.curToken.Pos
	block := &ast.Block{}

	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
	}

	if !p.curTokenIs(token.RBRACE) {
		p.addError("expected '}' to close block, got %s", p.curToken.Type)
		return nil
	}

	block.Location = p.loc(begin)
	return block
}

// parseStatement dispatches on the current token to one of the Statement
// statement variants. PRE: curToken is the first token of the
// statement. POST: curToken is the statement's last token (so the caller's
// p.nextToken() lands on the next statement).
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LBRACE:
		return p.parseBlock()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.INT_TYPE, token.BOOL_TYPE, token.VOID_TYPE:
		return p.parseVariableStatement()
	case token.IDENT:
		return p.parseIdentStatement()
	default:
		p.addError("unexpected token %s at start of statement", p.curToken.Type)
		return nil
	}
}

func (p *Parser) parseVariableStatement() ast.Statement {
	begin := p.curToken.Pos
	typ, ok := p.parseTypeKeyword()
	if !ok {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return &ast.Variable{Location: p.loc(begin), VarType: typ, Name: name}
}

// parseIdentStatement disambiguates an identifier-led statement between an
// assignment ("name = expr;") and a statement-form call ("name(args);").
func (p *Parser) parseIdentStatement() ast.Statement {
	begin := p.curToken.Pos
	name := p.curToken.Literal

	switch p.peekToken.Type {
	case token.ASSIGN:
		p.nextToken() // consume '='
		p.nextToken() // move to start of expression
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
		return &ast.Assignment{Location: p.loc(begin), Target: name, Value: value}
	case token.LPAREN:
		p.nextToken() // consume '('
		args, ok := p.parseArgumentList()
		if !ok {
			return nil
		}
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
		return &ast.Call{Location: p.loc(begin), Name: name, Args: args}
	default:
		p.addError("expected '=' or '(' after identifier %q, got %s", name, p.peekToken.Type)
		return nil
	}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	begin := p.curToken.Pos
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	pred := p.parseExpression(LOWEST)
	if pred == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	body := p.parseStatement()
	if body == nil {
		return nil
	}
	return &ast.While{Location: p.loc(begin), Pred: pred, Body: body}
}

func (p *Parser) parseIfStatement() ast.Statement {
	begin := p.curToken.Pos
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	pred := p.parseExpression(LOWEST)
	if pred == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	then := p.parseStatement()
	if then == nil {
		return nil
	}

	ifStmt := &ast.If{Pred: pred, Then: then}
	if p.peekTokenIs(token.ELSE) {
		p.nextToken() // consume 'else'
		p.nextToken()
		elseStmt := p.parseStatement()
		if elseStmt == nil {
			return nil
		}
		ifStmt.Else = elseStmt
	}
	ifStmt.Location = p.loc(begin)
	return ifStmt
}

// parseArgumentList parses a possibly-empty, comma-separated argument list.
// PRE: curToken is LPAREN. POST: curToken is RPAREN.
func (p *Parser) parseArgumentList() ([]ast.Expression, bool) {
	var args []ast.Expression

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args, true
	}

	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil, false
	}
	args = append(args, arg)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return args, true
}
