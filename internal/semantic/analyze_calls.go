package semantic

import "github.com/lenticularis39/epica/internal/ast"

// analyzeCallStatement types the arguments of a statement-form call and
// discards the resolved return type.
func (a *Analyzer) analyzeCallStatement(c *ast.Call) bool {
	for _, arg := range c.Args {
		if !a.analyzeExpression(arg) {
			return false
		}
	}

	_, fn, ok := a.resolveCall(c.Location, c.Name, c.Args)
	if !ok {
		return false
	}
	c.Func = fn
	return true
}

// resolveCall resolves name against the three builtins, then the function
// table, checking arity and argument types. args must already be typed.
func (a *Analyzer) resolveCall(loc ast.Location, name string, args []ast.Expression) (ast.Type, *ast.Function, bool) {
	if ast.IsBuiltin(name) {
		t, ok := a.resolveBuiltin(loc, name, args)
		return t, nil, ok
	}

	fn, ok := a.functions[name]
	if !ok {
		return ast.None, nil, a.errorf(loc.Begin(), "function %s not defined", name)
	}

	if len(args) != len(fn.Params) {
		return ast.None, nil, a.errorf(loc.Begin(), "function %s takes %d arguments, %d given",
			name, len(fn.Params), len(args))
	}

	for i, arg := range args {
		if arg.GetType() != fn.Params[i].Type {
			return ast.None, nil, a.errorf(loc.Begin(), "argument %d has type %s, %s expected",
				i, arg.GetType(), fn.Params[i].Type)
		}
	}

	return fn.ReturnType, fn, true
}

// resolveBuiltin checks arity and argument types for return, read and
// write, per the fixed table the three builtins are specified by.
func (a *Analyzer) resolveBuiltin(loc ast.Location, name string, args []ast.Expression) (ast.Type, bool) {
	switch name {
	case ast.BuiltinReturn:
		return a.resolveReturn(loc, args)

	case ast.BuiltinRead:
		if len(args) != 0 {
			return ast.None, a.errorf(loc.Begin(), "read builtin takes exactly 0 arguments, %d given", len(args))
		}
		return ast.Int, true

	case ast.BuiltinWrite:
		if len(args) != 1 {
			return ast.None, a.errorf(loc.Begin(), "write builtin takes exactly 1 argument, %d given", len(args))
		}
		if args[0].GetType() != ast.Int {
			return ast.None, a.errorf(loc.Begin(), "write builtin takes int argument, %s given", args[0].GetType())
		}
		return ast.Void, true

	default:
		panic("semantic: unknown builtin " + name)
	}
}

// resolveReturn validates arity against the enclosing function's return
// type: zero arguments for a Void function, exactly one matching argument
// otherwise.
func (a *Analyzer) resolveReturn(loc ast.Location, args []ast.Expression) (ast.Type, bool) {
	want := 0
	if a.current.ReturnType != ast.Void {
		want = 1
	}

	if len(args) != want {
		return ast.None, a.errorf(loc.Begin(), "return builtin takes exactly %d argument(s), %d given", want, len(args))
	}

	if want == 1 && args[0].GetType() != a.current.ReturnType {
		return ast.None, a.errorf(loc.Begin(), "return type of function %s is %s, %s given",
			a.current.Name, a.current.ReturnType, args[0].GetType())
	}

	return ast.Void, true
}
