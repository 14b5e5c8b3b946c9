package semantic

import (
	"github.com/lenticularis39/epica/internal/ast"
)

// analyzeExpression visits e's children first (synthesised attributes),
// then types e itself per the rules for its concrete kind.
func (a *Analyzer) analyzeExpression(e ast.Expression) bool {
	switch expr := e.(type) {
	case *ast.Integer:
		expr.SetType(ast.Int)
		return true

	case *ast.Boolean:
		expr.SetType(ast.Bool)
		return true

	case *ast.Identifier:
		t, ok := a.scope.Lookup(expr.Name)
		if !ok {
			return a.errorf(expr.Location.Begin(), "identifier %s undeclared", expr.Name)
		}
		expr.SetType(t)
		return true

	case *ast.BinOp:
		return a.analyzeBinOp(expr)

	case *ast.UnOp:
		return a.analyzeUnOp(expr)

	case *ast.CallExpr:
		return a.analyzeCallExpr(expr)

	default:
		panic("semantic: unhandled expression kind")
	}
}

func (a *Analyzer) analyzeBinOp(b *ast.BinOp) bool {
	if !a.analyzeExpression(b.Left) || !a.analyzeExpression(b.Right) {
		return false
	}
	lt, rt := b.Left.GetType(), b.Right.GetType()

	switch b.Kind {
	case ast.Leq, ast.Geq, ast.Gt, ast.Lt:
		if lt != ast.Int || rt != ast.Int {
			return a.errorf(b.Location.Begin(), "relation operator arguments must be int")
		}
		b.SetType(ast.Bool)

	case ast.Eq:
		if lt != rt {
			return a.errorf(b.Location.Begin(), "only values of same type may be compared")
		}
		b.SetType(ast.Bool)

	case ast.LogOr, ast.LogAnd, ast.LogXor:
		if lt != ast.Bool || rt != ast.Bool {
			return a.errorf(b.Location.Begin(), "logical operator arguments must be bool")
		}
		b.SetType(ast.Bool)

	case ast.Or, ast.And, ast.Xor, ast.Add, ast.Mult, ast.Sub:
		if lt != ast.Int || rt != ast.Int {
			return a.errorf(b.Location.Begin(), "arithmetic operator arguments must be int")
		}
		b.SetType(ast.Int)

	default:
		panic("semantic: unhandled binary operator kind")
	}
	return true
}

func (a *Analyzer) analyzeUnOp(u *ast.UnOp) bool {
	if !a.analyzeExpression(u.Operand) {
		return false
	}
	t := u.Operand.GetType()

	switch u.Kind {
	case ast.Neg, ast.Not:
		if t != ast.Int {
			return a.errorf(u.Location.Begin(), "arithmetic operator arguments must be int")
		}
		u.SetType(ast.Int)

	case ast.LogNot:
		if t != ast.Bool {
			return a.errorf(u.Location.Begin(), "logical operator argument must be bool")
		}
		u.SetType(ast.Bool)

	default:
		panic("semantic: unhandled unary operator kind")
	}
	return true
}

func (a *Analyzer) analyzeCallExpr(c *ast.CallExpr) bool {
	for _, arg := range c.Args {
		if !a.analyzeExpression(arg) {
			return false
		}
	}

	retType, fn, ok := a.resolveCall(c.Location, c.Name, c.Args)
	if !ok {
		return false
	}
	c.Func = fn
	c.SetType(retType)
	return true
}
