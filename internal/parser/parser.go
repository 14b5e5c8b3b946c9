// Package parser implements a hand-written recursive-descent parser: it
// takes source text and the lexer's token stream and produces a
// fully-parented ast.Program plus source-location metadata.
//
// Expression parsing follows the classic Pratt (top-down operator
// precedence) structure: a table of prefix parse functions keyed by token
// type, a table of infix parse functions keyed by token type, and a
// precedence climbing loop in parseExpression.
package parser

import (
	"fmt"

	"github.com/lenticularis39/epica/internal/ast"
	"github.com/lenticularis39/epica/internal/lexer"
	"github.com/lenticularis39/epica/internal/token"
)

// Precedence levels for binary operators, lowest to highest.
const (
	_ int = iota
	LOWEST
	LOGOR      // ||
	LOGXOR     // ^^
	LOGAND     // &&
	BITOR      // |
	BITXOR     // ^
	BITAND     // &
	EQUALS     // ==
	RELATIONAL // < > <= >=
	SUM        // + -
	PRODUCT    // *
	PREFIX     // -x ~x !x
	CALLPREC   // f(...)
)

var precedences = map[token.Type]int{
	token.LOGOR:  LOGOR,
	token.LOGXOR: LOGXOR,
	token.LOGAND: LOGAND,
	token.BITOR:  BITOR,
	token.BITXOR: BITXOR,
	token.BITAND: BITAND,
	token.EQ:     EQUALS,
	token.LT:     RELATIONAL,
	token.GT:     RELATIONAL,
	token.LEQ:    RELATIONAL,
	token.GEQ:    RELATIONAL,
	token.PLUS:   SUM,
	token.MINUS:  SUM,
	token.STAR:   PRODUCT,
}

func getPrecedence(t token.Type) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}

var binOpKinds = map[token.Type]ast.BinOpKind{
	token.LOGOR:  ast.LogOr,
	token.LOGXOR: ast.LogXor,
	token.LOGAND: ast.LogAnd,
	token.BITOR:  ast.Or,
	token.BITXOR: ast.Xor,
	token.BITAND: ast.And,
	token.EQ:     ast.Eq,
	token.LT:     ast.Lt,
	token.GT:     ast.Gt,
	token.LEQ:    ast.Leq,
	token.GEQ:    ast.Geq,
	token.PLUS:   ast.Add,
	token.MINUS:  ast.Sub,
	token.STAR:   ast.Mult,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser turns a token stream into an ast.Program.
type Parser struct {
	l    *lexer.Lexer
	file string

	curToken  token.Token
	peekToken token.Token

	errors []ParseError

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer, file string) *Parser {
	p := &Parser{l: l, file: file}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.IDENT:  p.parseIdentifierOrCall,
		token.INT:    p.parseIntegerLiteral,
		token.TRUE:   p.parseBooleanLiteral,
		token.FALSE:  p.parseBooleanLiteral,
		token.MINUS:  p.parsePrefixExpression,
		token.TILDE:  p.parsePrefixExpression,
		token.NOT:    p.parsePrefixExpression,
		token.LPAREN: p.parseGroupedExpression,
	}

	p.infixParseFns = map[token.Type]infixParseFn{}
	for tt := range precedences {
		p.infixParseFns[tt] = p.parseInfixExpression
	}

	// Prime curToken/peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every diagnostic accumulated while parsing.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) addError(format string, args ...interface{}) {
	p.errors = append(p.errors, ParseError{Pos: p.curToken.Pos, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

// expectPeek advances past peekToken if it matches t, recording an error
// and leaving the cursor unchanged otherwise.
func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.addError("expected next token to be %s, got %s (%q) instead", t, p.peekToken.Type, p.peekToken.Literal)
	return false
}

func (p *Parser) loc(begin token.Position) ast.Location {
	return ast.Location{
		File:      begin.File,
		BeginLine: begin.Line,
		BeginCol:  begin.Column,
		EndLine:   p.curToken.Pos.Line,
		EndCol:    p.curToken.Pos.Column,
	}
}

// ParseProgram parses a full translation unit: a sequence of function
// definitions.
func (p *Parser) ParseProgram() *ast.Program {
	begin := p.curToken.Pos
	prog := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		fn := p.parseFunction()
		if fn == nil {
			// Resynchronise on a parse failure by skipping to the next
			// top-level declaration so later errors can still surface.
			for !p.curTokenIs(token.EOF) && !p.curTokenIs(token.RBRACE) {
				p.nextToken()
			}
			if p.curTokenIs(token.RBRACE) {
				p.nextToken()
			}
			continue
		}
		prog.Functions = append(prog.Functions, fn)
		// parseFunction leaves curToken on the body's closing '}'.
		p.nextToken()
	}

	prog.Location = p.loc(begin)
	return prog
}
