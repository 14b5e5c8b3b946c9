package semantic

import "github.com/lenticularis39/epica/internal/ast"

// analyzeFunction resets the per-function context and walks the body. A
// Function's own location never needs re-checking here: redefinition was
// already caught in scanFunctions.
func (a *Analyzer) analyzeFunction(fn *ast.Function) bool {
	a.current = fn
	a.scope = NewScope(fn.Params)

	return a.analyzeStatement(fn.Body)
}
