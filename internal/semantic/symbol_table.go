package semantic

import "github.com/lenticularis39/epica/internal/ast"

// Scope holds the per-function attribute-grammar context: a mapping
// name → Parameter seeded from the function's formals,
// and an initially-empty mapping name → Variable populated as local
// declarations are visited. This scope is not chained to an outer scope,
// unlike a full symbol-table hierarchy: epica has no nested block
// scoping, every local is visible for the rest of its enclosing function.
type Scope struct {
	params    map[string]ast.Parameter
	variables map[string]*ast.Variable
}

// NewScope seeds a fresh Scope from a function's formal parameters.
func NewScope(params []ast.Parameter) *Scope {
	s := &Scope{
		params:    make(map[string]ast.Parameter, len(params)),
		variables: make(map[string]*ast.Variable),
	}
	for _, p := range params {
		s.params[p.Name] = p
	}
	return s
}

// Param looks up a formal parameter by name.
func (s *Scope) Param(name string) (ast.Parameter, bool) {
	p, ok := s.params[name]
	return p, ok
}

// Variable looks up a previously-declared local by name.
func (s *Scope) Variable(name string) (*ast.Variable, bool) {
	v, ok := s.variables[name]
	return v, ok
}

// Declare records a new local variable declaration. It returns the
// conflicting prior declaration (a *ast.Variable, or nil if the conflict is
// with a parameter) and ok=false when name is already taken.
func (s *Scope) Declare(v *ast.Variable) (conflict *ast.Variable, conflictsParam bool, ok bool) {
	if existing, found := s.variables[v.Name]; found {
		return existing, false, false
	}
	if _, found := s.params[v.Name]; found {
		return nil, true, false
	}
	s.variables[v.Name] = v
	return nil, false, true
}

// Lookup resolves name against variables first, then parameters — the
// order Identifier and Assignment resolution require. Declare never lets
// a local take a parameter's name, so at most one of the two can match.
func (s *Scope) Lookup(name string) (ast.Type, bool) {
	if v, ok := s.variables[name]; ok {
		return v.VarType, true
	}
	if p, ok := s.params[name]; ok {
		return p.Type, true
	}
	return ast.None, false
}
