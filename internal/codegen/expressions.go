package codegen

import (
	"fmt"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/lenticularis39/epica/internal/ast"
)

// lowerExpression lowers e to a single SSA value, emitting any
// instructions it requires into the current block.
func (g *Generator) lowerExpression(e ast.Expression) value.Value {
	switch expr := e.(type) {
	case *ast.Integer:
		return constant.NewInt(types.I64, expr.Value)

	case *ast.Boolean:
		if expr.Value {
			return constant.NewInt(types.I1, 1)
		}
		return constant.NewInt(types.I1, 0)

	case *ast.Identifier:
		slot := g.locals[expr.Name]
		return g.block.NewLoad(lowerType(expr.GetType()), slot)

	case *ast.CallExpr:
		return g.lowerCallExpr(expr)

	case *ast.BinOp:
		return g.lowerBinOp(expr)

	case *ast.UnOp:
		return g.lowerUnOp(expr)

	default:
		panic(fmt.Sprintf("codegen: unhandled expression %T", e))
	}
}

func (g *Generator) lowerCallExpr(expr *ast.CallExpr) value.Value {
	switch expr.Name {
	case ast.BuiltinRead:
		return g.block.NewCall(g.readFn)
	case ast.BuiltinWrite:
		return g.block.NewCall(g.writeFn, g.lowerExpression(expr.Args[0]))
	default:
		return g.lowerUserCall(expr.Func, expr.Args)
	}
}

func (g *Generator) lowerUserCall(fn *ast.Function, args []ast.Expression) value.Value {
	irFn := g.funcs[fn.Name]
	vals := make([]value.Value, len(args))
	for i, a := range args {
		vals[i] = g.lowerExpression(a)
	}
	return g.block.NewCall(irFn, vals...)
}

// lowerBinOp emits both operands, left first, then dispatches by kind.
// Logical and bitwise operators share an encoding because Bool is i1.
func (g *Generator) lowerBinOp(b *ast.BinOp) value.Value {
	left := g.lowerExpression(b.Left)
	right := g.lowerExpression(b.Right)

	switch b.Kind {
	case ast.Add:
		return g.block.NewAdd(left, right)
	case ast.Mult:
		return g.block.NewMul(left, right)
	case ast.Sub:
		return g.block.NewSub(left, right)
	case ast.Or, ast.LogOr:
		return g.block.NewOr(left, right)
	case ast.And, ast.LogAnd:
		return g.block.NewAnd(left, right)
	case ast.Xor, ast.LogXor:
		return g.block.NewXor(left, right)
	case ast.Lt:
		return g.block.NewICmp(enum.IPredSLT, left, right)
	case ast.Gt:
		return g.block.NewICmp(enum.IPredSGT, left, right)
	case ast.Leq:
		return g.block.NewICmp(enum.IPredSLE, left, right)
	case ast.Geq:
		return g.block.NewICmp(enum.IPredSGE, left, right)
	case ast.Eq:
		return g.block.NewICmp(enum.IPredEQ, left, right)
	default:
		panic(fmt.Sprintf("codegen: unhandled binary operator kind %d", b.Kind))
	}
}

// lowerUnOp lowers every unary operator as a subtraction from a constant:
// Neg x = 0 - x; Not x and LogNot x = (-1) - x, at i64 and i1 width
// respectively (the i1 encoding is equivalent to a bitwise complement).
func (g *Generator) lowerUnOp(u *ast.UnOp) value.Value {
	operand := g.lowerExpression(u.Operand)

	switch u.Kind {
	case ast.Neg:
		return g.block.NewSub(constant.NewInt(types.I64, 0), operand)
	case ast.Not:
		return g.block.NewSub(constant.NewInt(types.I64, -1), operand)
	case ast.LogNot:
		return g.block.NewSub(constant.NewInt(types.I1, -1), operand)
	default:
		panic(fmt.Sprintf("codegen: unhandled unary operator kind %d", u.Kind))
	}
}
