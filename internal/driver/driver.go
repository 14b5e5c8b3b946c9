// Package driver orchestrates the pipeline Parser → AST → Semantic
// Analyser → Code Generator → IR Module for a single translation unit,
// used by both cmd/epica and the end-to-end snapshot tests.
package driver

import (
	"fmt"

	"github.com/lenticularis39/epica/internal/codegen"
	"github.com/lenticularis39/epica/internal/errors"
	"github.com/lenticularis39/epica/internal/lexer"
	"github.com/lenticularis39/epica/internal/parser"
	"github.com/lenticularis39/epica/internal/semantic"
)

// Compile runs the full pipeline over source (attributed to file for
// diagnostics) and returns the emitted module's textual IR. debug, if
// greater than zero, enables the lexer's token trace. Each phase fully
// completes before the next begins; the first phase to fail aborts the
// pipeline and returns its formatted diagnostics as the error.
func Compile(source, file string, debug int) (string, error) {
	l := lexer.New(source, file)
	l.Tracing = debug > 0

	p := parser.New(l, file)
	prog := p.ParseProgram()
	if parseErrs := p.Errors(); len(parseErrs) > 0 {
		return "", formatParseErrors(parseErrs, source, file)
	}

	a := semantic.NewAnalyzer(source, file)
	if !a.Analyze(prog) {
		return "", fmt.Errorf("%s", errors.FormatErrors(a.Diagnostics(), false))
	}

	mod := codegen.Generate(prog)
	return mod.String(), nil
}

func formatParseErrors(parseErrs []parser.ParseError, source, file string) error {
	diags := make([]*errors.CompilerError, len(parseErrs))
	for i, e := range parseErrs {
		diags[i] = errors.New(e.Pos, e.Message, source, file)
	}
	return fmt.Errorf("%s", errors.FormatErrors(diags, false))
}
