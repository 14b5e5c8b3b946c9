package semantic

import (
	"github.com/lenticularis39/epica/internal/ast"
)

// analyzeStatement dispatches on the concrete statement variant, applying
// the inherited-attribute checks on entry and the synthesised-attribute
// checks once children have been visited.
func (a *Analyzer) analyzeStatement(s ast.Statement) bool {
	switch stmt := s.(type) {
	case *ast.Block:
		for _, inner := range stmt.Statements {
			if !a.analyzeStatement(inner) {
				return false
			}
		}
		return true

	case *ast.Variable:
		return a.analyzeVariable(stmt)

	case *ast.Assignment:
		return a.analyzeAssignment(stmt)

	case *ast.While:
		if !a.analyzeExpression(stmt.Pred) {
			return false
		}
		if stmt.Pred.GetType() != ast.Bool {
			return a.errorf(stmt.Pred.Loc().Begin(), "while predicate is of type %s, bool expected",
				stmt.Pred.GetType())
		}
		return a.analyzeStatement(stmt.Body)

	case *ast.If:
		if !a.analyzeExpression(stmt.Pred) {
			return false
		}
		if stmt.Pred.GetType() != ast.Bool {
			return a.errorf(stmt.Pred.Loc().Begin(), "if predicate is of type %s, bool expected",
				stmt.Pred.GetType())
		}
		if !a.analyzeStatement(stmt.Then) {
			return false
		}
		if stmt.Else != nil {
			return a.analyzeStatement(stmt.Else)
		}
		return true

	case *ast.Call:
		return a.analyzeCallStatement(stmt)

	default:
		panic("semantic: unhandled statement kind")
	}
}

// analyzeVariable reserves the declared name in the current scope. A Void
// declaration and a name collision with a local or a parameter are both
// errors.
func (a *Analyzer) analyzeVariable(v *ast.Variable) bool {
	if v.VarType == ast.Void {
		return a.errorf(v.Location.Begin(), "variable %s is of type void", v.Name)
	}

	conflict, conflictsParam, ok := a.scope.Declare(v)
	if !ok {
		if conflictsParam {
			return a.errorf(v.Location.Begin(), "variable %s conflicts with function parameter", v.Name)
		}
		return a.errorf(v.Location.Begin(), "variable %s redefined (previous definition: %s)",
			v.Name, conflict.Location)
	}
	return true
}

// analyzeAssignment resolves Target against the current scope and requires
// the assigned expression's type to equal the destination's type.
func (a *Analyzer) analyzeAssignment(asn *ast.Assignment) bool {
	targetType, ok := a.scope.Lookup(asn.Target)
	if !ok {
		return a.errorf(asn.Location.Begin(), "identifier %s undeclared", asn.Target)
	}

	if !a.analyzeExpression(asn.Value) {
		return false
	}

	if asn.Value.GetType() != targetType {
		return a.errorf(asn.Location.Begin(), "assigning %s to %s, which is of type %s",
			asn.Value.GetType(), asn.Target, targetType)
	}
	return true
}
