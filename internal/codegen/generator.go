// Package codegen lowers a semantically-valid epica Program to an
// in-memory SSA IR module using github.com/llir/llvm, the Go-ecosystem
// analogue of the LLVM C++ API. Lowering is single-pass: it traverses the
// typed AST once, using a mutable cursor (current function, current
// block) and a per-function map of local names to their alloca slots.
package codegen

import (
	"fmt"
	"strings"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"

	"github.com/lenticularis39/epica/internal/ast"
)

// Generator holds the mutable lowering cursor for a single Program.
type Generator struct {
	module *ir.Module

	funcs   map[string]*ir.Func
	readFn  *ir.Func
	writeFn *ir.Func

	function     *ir.Func
	block        *ir.Block
	locals       map[string]*ir.InstAlloca
	blockCounter int
}

// Generate lowers prog to a fresh IR module. prog must already have
// passed semantic analysis: every expression must carry a resolved,
// non-None type and every call must carry its resolved back-reference.
func Generate(prog *ast.Program) *ir.Module {
	g := &Generator{
		module: ir.NewModule(),
		funcs:  make(map[string]*ir.Func),
	}
	g.declareBuiltins()

	for _, fn := range prog.Functions {
		g.declareFunction(fn)
	}
	for _, fn := range prog.Functions {
		g.lowerFunction(fn)
	}
	return g.module
}

func lowerType(t ast.Type) types.Type {
	switch t {
	case ast.Int:
		return types.I64
	case ast.Bool:
		return types.I1
	case ast.Void:
		return types.Void
	default:
		panic(fmt.Sprintf("codegen: type %s must not reach code generation", t))
	}
}

// declareBuiltins emits external declarations for the read and write
// builtins, callable from every lowered function.
func (g *Generator) declareBuiltins() {
	g.readFn = g.module.NewFunc("read", types.I64)
	g.readFn.Linkage = enum.LinkageExternal

	writeParam := ir.NewParam("v", types.I64)
	g.writeFn = g.module.NewFunc("write", types.Void, writeParam)
	g.writeFn.Linkage = enum.LinkageExternal
}

// declareFunction creates the IR function signature ahead of lowering any
// body, so mutually-recursive calls resolve regardless of declaration
// order (mirroring the semantic analyser's two-pass function table scan).
func (g *Generator) declareFunction(fn *ast.Function) {
	retType := lowerType(fn.ReturnType)

	params := make([]*ir.Param, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = ir.NewParam(p.Name, lowerType(p.Type))
	}

	irFn := g.module.NewFunc(fn.Name, retType, params...)
	irFn.Linkage = linkageFor(fn.Name)
	g.funcs[fn.Name] = irFn
}

// linkageFor implements the x-prefix/main naming convention: a function is
// externally linked iff its name is exactly "main" or begins with 'x'.
func linkageFor(name string) enum.Linkage {
	if name == "main" || strings.HasPrefix(name, "x") {
		return enum.LinkageExternal
	}
	return enum.LinkageInternal
}

// newBlock creates a basic block in the current function with a
// disambiguated name, so nested control structures of the same shape
// (e.g. two sibling `if`s) never collide.
func (g *Generator) newBlock(label string) *ir.Block {
	g.blockCounter++
	return g.function.NewBlock(fmt.Sprintf("%s.%d", label, g.blockCounter))
}
