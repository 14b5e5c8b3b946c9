package codegen

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"

	"github.com/lenticularis39/epica/internal/ast"
)

// lowerFunction emits the body of fn into its already-declared IR
// function, then appends a default terminator and runs dead-block
// elimination.
func (g *Generator) lowerFunction(fn *ast.Function) {
	irFn := g.funcs[fn.Name]

	g.function = irFn
	g.locals = make(map[string]*ir.InstAlloca, len(fn.Params))
	g.blockCounter = 0

	entry := irFn.NewBlock("entry")
	g.block = entry

	for i, p := range fn.Params {
		slot := entry.NewAlloca(lowerType(p.Type))
		entry.NewStore(irFn.Params[i], slot)
		g.locals[p.Name] = slot
	}

	g.lowerStatement(fn.Body)

	if g.block.Term == nil {
		if fn.ReturnType == ast.Void {
			g.block.NewRet(nil)
		} else {
			g.block.NewRet(zeroValue(fn.ReturnType))
		}
	}

	eliminateDeadBlocks(irFn)
}

// zeroValue builds the default return value for a non-Void return type:
// 0 for Int, false for Bool.
func zeroValue(t ast.Type) constant.Constant {
	switch t {
	case ast.Int:
		return constant.NewInt(types.I64, 0)
	case ast.Bool:
		return constant.NewInt(types.I1, 0)
	default:
		panic(fmt.Sprintf("codegen: no default return value for type %s", t))
	}
}
