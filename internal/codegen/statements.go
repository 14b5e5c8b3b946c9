package codegen

import (
	"fmt"

	"github.com/lenticularis39/epica/internal/ast"
)

// lowerStatement updates the cursor (g.block) as it emits s. PRE: g.block
// is non-terminated. Builtins that emit a terminator (return) leave
// g.block pointing at a fresh, still-open block so the cursor invariant
// holds for any following statements in the source block (removed later
// by dead-block elimination).
func (g *Generator) lowerStatement(s ast.Statement) {
	switch stmt := s.(type) {
	case *ast.Block:
		for _, inner := range stmt.Statements {
			g.lowerStatement(inner)
		}

	case *ast.Variable:
		slot := g.block.NewAlloca(lowerType(stmt.VarType))
		g.locals[stmt.Name] = slot

	case *ast.Assignment:
		val := g.lowerExpression(stmt.Value)
		g.block.NewStore(val, g.locals[stmt.Target])

	case *ast.If:
		g.lowerIf(stmt)

	case *ast.While:
		g.lowerWhile(stmt)

	case *ast.Call:
		g.lowerCallStatement(stmt)

	default:
		panic(fmt.Sprintf("codegen: unhandled statement %T", s))
	}
}

// lowerIf always creates the three basic blocks the structured-control-flow
// lowering names after: if.true, if.false, if.join. if.false is created
// even when there is no else branch; dead-block elimination removes it
// since it is never branched to.
func (g *Generator) lowerIf(stmt *ast.If) {
	cond := g.lowerExpression(stmt.Pred)

	thenBlock := g.newBlock("if.true")
	elseBlock := g.newBlock("if.false")
	joinBlock := g.newBlock("if.join")

	if stmt.Else != nil {
		g.block.NewCondBr(cond, thenBlock, elseBlock)
	} else {
		g.block.NewCondBr(cond, thenBlock, joinBlock)
	}

	g.block = thenBlock
	g.lowerStatement(stmt.Then)
	if g.block.Term == nil {
		g.block.NewBr(joinBlock)
	}

	if stmt.Else != nil {
		g.block = elseBlock
		g.lowerStatement(stmt.Else)
		if g.block.Term == nil {
			g.block.NewBr(joinBlock)
		}
	}

	g.block = joinBlock
}

// lowerWhile is test-at-bottom: the body runs once unconditionally before
// the predicate is first evaluated.
func (g *Generator) lowerWhile(stmt *ast.While) {
	loopBlock := g.newBlock("while.loop")
	g.block.NewBr(loopBlock)

	g.block = loopBlock
	g.lowerStatement(stmt.Body)
	cond := g.lowerExpression(stmt.Pred)

	nextBlock := g.newBlock("while.next")
	g.block.NewCondBr(cond, loopBlock, nextBlock)

	g.block = nextBlock
}

// lowerCallStatement dispatches the statement form of a call, discarding
// any result value the callee produces.
func (g *Generator) lowerCallStatement(stmt *ast.Call) {
	switch stmt.Name {
	case ast.BuiltinReturn:
		g.lowerReturn(stmt.Args)
	case ast.BuiltinRead:
		g.block.NewCall(g.readFn)
	case ast.BuiltinWrite:
		g.block.NewCall(g.writeFn, g.lowerExpression(stmt.Args[0]))
	default:
		g.lowerUserCall(stmt.Func, stmt.Args)
	}
}

// lowerReturn emits the return terminator, then opens a fresh block so the
// cursor remains well-formed for statements (if any) that textually follow
// the return. Those statements, and the fresh block itself, are removed
// by dead-block elimination.
func (g *Generator) lowerReturn(args []ast.Expression) {
	if len(args) == 0 {
		g.block.NewRet(nil)
	} else {
		g.block.NewRet(g.lowerExpression(args[0]))
	}
	g.block = g.newBlock("unreach")
}
