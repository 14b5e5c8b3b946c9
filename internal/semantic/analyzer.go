// Package semantic implements epica's two-pass, attribute-grammar style
// semantic analyser: phase 1 builds the function table,
// phase 2 walks the tree once, resolving inherited attributes on entry to
// a node and synthesised attributes (types, back-references) on leaving
// it, so that every sub-expression is typed before its parent.
package semantic

import (
	"fmt"

	"github.com/lenticularis39/epica/internal/ast"
	"github.com/lenticularis39/epica/internal/errors"
	"github.com/lenticularis39/epica/internal/token"
)

// Analyzer performs semantic analysis on an epica Program, mutating the
// AST in place to attach resolved types and call back-references.
type Analyzer struct {
	source string
	file   string

	functions map[string]*ast.Function
	scope     *Scope
	current   *ast.Function

	diagnostics []*errors.CompilerError
}

// NewAnalyzer creates an Analyzer. source and file are only used to render
// diagnostics with source context.
func NewAnalyzer(source, file string) *Analyzer {
	return &Analyzer{
		source:    source,
		file:      file,
		functions: make(map[string]*ast.Function),
	}
}

// Diagnostics returns every error recorded during analysis. A non-empty
// result always accompanies Analyze returning false.
func (a *Analyzer) Diagnostics() []*errors.CompilerError {
	return a.diagnostics
}

func (a *Analyzer) errorf(pos token.Position, format string, args ...interface{}) bool {
	a.diagnostics = append(a.diagnostics, errors.New(pos, fmt.Sprintf(format, args...), a.source, a.file))
	return false
}

// Analyze runs both phases over prog. The first diagnostic in either phase
// aborts that phase immediately: Analyze returns false as soon as one is
// recorded.
func (a *Analyzer) Analyze(prog *ast.Program) bool {
	if !a.scanFunctions(prog) {
		return false
	}
	for _, fn := range prog.Functions {
		if !a.analyzeFunction(fn) {
			return false
		}
	}
	return true
}

// scanFunctions is phase 1: accumulate name → Function in declaration
// order, failing on the second occurrence of a name.
func (a *Analyzer) scanFunctions(prog *ast.Program) bool {
	for _, fn := range prog.Functions {
		if existing, ok := a.functions[fn.Name]; ok {
			return a.errorf(fn.Location.Begin(), "function %s redefined (previous definition: %s)",
				fn.Name, existing.Location)
		}
		a.functions[fn.Name] = fn
	}
	return true
}
