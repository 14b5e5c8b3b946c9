package parser

import (
	"github.com/lenticularis39/epica/internal/ast"
	"github.com/lenticularis39/epica/internal/token"
)

// parseTypeKeyword reads the type keyword at curToken, without advancing,
// and returns the corresponding ast.Type. The conversion from token literal
// to ast.Type is total over "int", "bool", "void".
func (p *Parser) parseTypeKeyword() (ast.Type, bool) {
	switch p.curToken.Type {
	case token.INT_TYPE, token.BOOL_TYPE, token.VOID_TYPE:
		t, ok := ast.TypeFromString(p.curToken.Literal)
		if !ok {
			p.addError("unknown type %q", p.curToken.Literal)
			return ast.None, false
		}
		return t, true
	default:
		p.addError("expected a type keyword (int, bool, void), got %s", p.curToken.Type)
		return ast.None, false
	}
}

// parseFunction parses: type name '(' params? ')' block
func (p *Parser) parseFunction() *ast.Function {
	begin := p.curToken.Pos

	retType, ok := p.parseTypeKeyword()
	if !ok {
		return nil
	}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params, ok := p.parseParameterList()
	if !ok {
		return nil
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}

	return &ast.Function{
		Location:   p.loc(begin),
		ReturnType: retType,
		Name:       name,
		Params:     params,
		Body:       body,
	}
}

// parseParameterList parses a possibly-empty, comma-separated list of
// "type name" pairs, ending on RPAREN. PRE: curToken is LPAREN.
// POST: curToken is RPAREN.
func (p *Parser) parseParameterList() ([]ast.Parameter, bool) {
	var params []ast.Parameter

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params, true
	}

	p.nextToken()
	for {
		typ, ok := p.parseTypeKeyword()
		if !ok {
			return nil, false
		}
		if !p.expectPeek(token.IDENT) {
			return nil, false
		}
		params = append(params, ast.Parameter{Type: typ, Name: p.curToken.Literal})

		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}

	if !p.expectPeek(token.RPAREN) {
		return nil, false
	}
	return params, true
}
