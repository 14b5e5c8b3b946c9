package codegen

import (
	"strings"
	"testing"

	"github.com/llir/llvm/ir/enum"

	"github.com/lenticularis39/epica/internal/ast"
	"github.com/lenticularis39/epica/internal/lexer"
	"github.com/lenticularis39/epica/internal/parser"
	"github.com/lenticularis39/epica/internal/semantic"
)

func compile(t *testing.T, src string) *ast.Program {
	t.Helper()
	l := lexer.New(src, "test.epica")
	p := parser.New(l, "test.epica")
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	a := semantic.NewAnalyzer(src, "test.epica")
	if !a.Analyze(prog) {
		t.Fatalf("unexpected semantic errors: %v", a.Diagnostics())
	}
	return prog
}

func TestGenerateDeclaresReadAndWriteExternally(t *testing.T) {
	prog := compile(t, `int main() { write(read()); return(0); }`)
	mod := Generate(prog)

	names := map[string]bool{}
	for _, f := range mod.Funcs {
		names[f.Name()] = true
		if f.Name() == "read" || f.Name() == "write" {
			if f.Linkage != enum.LinkageExternal {
				t.Errorf("expected %s to be externally linked", f.Name())
			}
		}
	}
	for _, want := range []string{"read", "write", "main"} {
		if !names[want] {
			t.Errorf("expected module to contain function %q", want)
		}
	}
}

func TestLinkageFollowsXPrefixAndMainRule(t *testing.T) {
	prog := compile(t, `int helper(int n) { return(n); } int xpublic(int n) { return(helper(n)); } int main() { return(0); }`)
	mod := Generate(prog)

	linkage := map[string]enum.Linkage{}
	for _, f := range mod.Funcs {
		linkage[f.Name()] = f.Linkage
	}

	if linkage["helper"] != enum.LinkageInternal {
		t.Errorf("expected helper to be internally linked, got %v", linkage["helper"])
	}
	if linkage["xpublic"] != enum.LinkageExternal {
		t.Errorf("expected xpublic to be externally linked, got %v", linkage["xpublic"])
	}
	if linkage["main"] != enum.LinkageExternal {
		t.Errorf("expected main to be externally linked, got %v", linkage["main"])
	}
}

func TestDeadBlockEliminationRemovesUnreachableBlocks(t *testing.T) {
	prog := compile(t, `void f() { return(); } void main() { f(); return(); }`)
	mod := Generate(prog)

	for _, f := range mod.Funcs {
		if f.Name() != "f" {
			continue
		}
		// entry issues the return terminator and opens a fresh "unreach"
		// block; dead-block elimination must have dropped it, leaving
		// exactly the entry block behind.
		if len(f.Blocks) != 1 {
			t.Fatalf("expected 1 reachable block in f, got %d", len(f.Blocks))
		}
	}
}

func TestIfWithoutElseDropsUnusedFalseBlock(t *testing.T) {
	prog := compile(t, `void main() { if (true) { write(1); } return(); }`)
	mod := Generate(prog)

	for _, f := range mod.Funcs {
		if f.Name() != "main" {
			continue
		}
		for _, b := range f.Blocks {
			if strings.HasPrefix(b.Name(), "if.false") {
				t.Fatalf("expected unused if.false block to be eliminated")
			}
		}
	}
}

func TestWhileLoopIsTestAtBottom(t *testing.T) {
	prog := compile(t, `void main() { int x; x = 0; while (x < 10) { x = x + 1; } return(); }`)
	mod := Generate(prog)

	var sawLoop, sawNext bool
	for _, f := range mod.Funcs {
		if f.Name() != "main" {
			continue
		}
		for _, b := range f.Blocks {
			if len(b.Name()) >= 10 && b.Name()[:10] == "while.loop" {
				sawLoop = true
			}
			if len(b.Name()) >= 10 && b.Name()[:10] == "while.next" {
				sawNext = true
			}
		}
	}
	if !sawLoop || !sawNext {
		t.Fatalf("expected both while.loop and while.next blocks to survive, loop=%v next=%v", sawLoop, sawNext)
	}
}

func TestRecursiveCallResolvesAgainstDeclaredFunction(t *testing.T) {
	prog := compile(t, `
int fib(int n) {
	if (n < 2) { return(n); }
	return(fib(n - 1) + fib(n - 2));
}
int main() {
	write(fib(10));
	return(0);
}
`)
	mod := Generate(prog)
	if len(mod.Funcs) != 4 { // read, write, fib, main
		t.Fatalf("expected 4 functions in module, got %d", len(mod.Funcs))
	}
}
