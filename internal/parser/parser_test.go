package parser

import (
	"testing"

	"github.com/lenticularis39/epica/internal/ast"
	"github.com/lenticularis39/epica/internal/lexer"
)

func testParser(input string) *Parser {
	l := lexer.New(input, "test.epica")
	return New(l, "test.epica")
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	for _, e := range errs {
		t.Errorf("parser error at %s: %s", e.Pos, e.Message)
	}
	t.FailNow()
}

func TestParseEmptyFunction(t *testing.T) {
	p := testParser(`void f() { }`)
	prog := p.ParseProgram()
	checkParserErrors(t, p)

	if len(prog.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(prog.Functions))
	}
	fn := prog.Functions[0]
	if fn.Name != "f" || fn.ReturnType != ast.Void {
		t.Fatalf("unexpected function %+v", fn)
	}
	if len(fn.Body.Statements) != 0 {
		t.Fatalf("expected empty body, got %d statements", len(fn.Body.Statements))
	}
}

func TestParseParameters(t *testing.T) {
	p := testParser(`int add(int a, bool b) { }`)
	prog := p.ParseProgram()
	checkParserErrors(t, p)

	fn := prog.Functions[0]
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if fn.Params[0].Name != "a" || fn.Params[0].Type != ast.Int {
		t.Fatalf("unexpected param 0: %+v", fn.Params[0])
	}
	if fn.Params[1].Name != "b" || fn.Params[1].Type != ast.Bool {
		t.Fatalf("unexpected param 1: %+v", fn.Params[1])
	}
}

func TestParseVariableAndAssignment(t *testing.T) {
	p := testParser(`int main() { int x; x = x + 1; }`)
	prog := p.ParseProgram()
	checkParserErrors(t, p)

	body := prog.Functions[0].Body.Statements
	if len(body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(body))
	}
	v, ok := body[0].(*ast.Variable)
	if !ok || v.Name != "x" || v.VarType != ast.Int {
		t.Fatalf("unexpected first statement: %+v", body[0])
	}
	a, ok := body[1].(*ast.Assignment)
	if !ok || a.Target != "x" {
		t.Fatalf("unexpected second statement: %+v", body[1])
	}
	bin, ok := a.Value.(*ast.BinOp)
	if !ok || bin.Kind != ast.Add {
		t.Fatalf("expected x + 1, got %+v", a.Value)
	}
}

func TestParseIfElse(t *testing.T) {
	p := testParser(`int main() { if (1 < 2) { return(1); } else { return(0); } }`)
	prog := p.ParseProgram()
	checkParserErrors(t, p)

	ifStmt, ok := prog.Functions[0].Body.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("expected If statement, got %T", prog.Functions[0].Body.Statements[0])
	}
	if ifStmt.Else == nil {
		t.Fatalf("expected else branch to be parsed")
	}
}

func TestParseIfWithoutElse(t *testing.T) {
	p := testParser(`int main() { if (1 < 2) { return(1); } }`)
	prog := p.ParseProgram()
	checkParserErrors(t, p)

	ifStmt := prog.Functions[0].Body.Statements[0].(*ast.If)
	if ifStmt.Else != nil {
		t.Fatalf("expected no else branch, got %+v", ifStmt.Else)
	}
}

func TestParseWhile(t *testing.T) {
	p := testParser(`int main() { while (true) { } }`)
	prog := p.ParseProgram()
	checkParserErrors(t, p)

	w, ok := prog.Functions[0].Body.Statements[0].(*ast.While)
	if !ok {
		t.Fatalf("expected While statement, got %T", prog.Functions[0].Body.Statements[0])
	}
	if _, ok := w.Pred.(*ast.Boolean); !ok {
		t.Fatalf("expected boolean predicate, got %+v", w.Pred)
	}
}

func TestParseCallStatementAndExpression(t *testing.T) {
	p := testParser(`int main() { write(read()); }`)
	prog := p.ParseProgram()
	checkParserErrors(t, p)

	call, ok := prog.Functions[0].Body.Statements[0].(*ast.Call)
	if !ok || call.Name != "write" {
		t.Fatalf("expected write(...) call statement, got %+v", prog.Functions[0].Body.Statements[0])
	}
	if len(call.Args) != 1 {
		t.Fatalf("expected 1 argument to write, got %d", len(call.Args))
	}
	inner, ok := call.Args[0].(*ast.CallExpr)
	if !ok || inner.Name != "read" {
		t.Fatalf("expected read() as argument, got %+v", call.Args[0])
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.BinOpKind
	}{
		{"1 + 2 * 3;", ast.Add},     // top-level op should be '+' (lower prec wraps)
		{"1 || 2 && 3;", ast.LogOr}, // && binds tighter than ||
	}

	for _, tt := range tests {
		p := testParser("int main() { int x; x = " + tt.input + " }")
		prog := p.ParseProgram()
		checkParserErrors(t, p)

		assign := prog.Functions[0].Body.Statements[1].(*ast.Assignment)
		bin, ok := assign.Value.(*ast.BinOp)
		if !ok {
			t.Fatalf("expected BinOp at top level for %q, got %+v", tt.input, assign.Value)
		}
		if bin.Kind != tt.kind {
			t.Fatalf("expected top-level operator %v for %q, got %v", tt.kind, tt.input, bin.Kind)
		}
	}
}

func TestUnaryOperators(t *testing.T) {
	p := testParser(`int main() { int x; x = -1; x = ~1; }`)
	prog := p.ParseProgram()
	checkParserErrors(t, p)

	neg := prog.Functions[0].Body.Statements[1].(*ast.Assignment).Value.(*ast.UnOp)
	if neg.Kind != ast.Neg {
		t.Fatalf("expected Neg, got %v", neg.Kind)
	}
	not := prog.Functions[0].Body.Statements[2].(*ast.Assignment).Value.(*ast.UnOp)
	if not.Kind != ast.Not {
		t.Fatalf("expected Not, got %v", not.Kind)
	}
}

func TestParseErrorMissingSemicolon(t *testing.T) {
	p := testParser(`int main() { int x }`)
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatalf("expected a parse error for missing semicolon")
	}
}
