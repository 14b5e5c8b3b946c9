package driver

import (
	"strings"
	"testing"
)

func TestCompileSucceedsForValidProgram(t *testing.T) {
	ir, err := Compile(`int main() { write(1); return(0); }`, "test.epica", 0)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !strings.Contains(ir, "define") {
		t.Fatalf("expected emitted IR to contain a function definition, got:\n%s", ir)
	}
}

func TestCompileReportsParseErrors(t *testing.T) {
	_, err := Compile(`int main() { int x }`, "test.epica", 0)
	if err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestCompileReportsSemanticErrors(t *testing.T) {
	_, err := Compile(`int dup(int x) { return(x); } int dup(int y) { return(y); }`, "test.epica", 0)
	if err == nil {
		t.Fatal("expected a semantic error")
	}
	if !strings.Contains(err.Error(), "function dup redefined") {
		t.Fatalf("expected redefinition message, got: %s", err)
	}
}
