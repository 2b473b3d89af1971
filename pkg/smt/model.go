package smt

import "go.smtlib.dev/smtlib/pkg/ast"

// SatResult is the three-valued check-sat outcome (spec.md §4.7).
type SatResult int

const (
	Unknown SatResult = iota
	Sat
	Unsat
)

func satResultFrom(r ast.CheckSatResponse) SatResult {
	switch {
	case r.Sat:
		return Sat
	case r.Unsat:
		return Unsat
	default:
		return Unknown
	}
}

// Model is a mapping from declared identifiers to the values a solver
// reports satisfy the asserted constraints (spec.md GLOSSARY, §4.7).
// Evaluation is purely syntactic lookup by identifier; no interpretation
// of compound terms is performed.
type Model struct {
	values map[string]ast.Term
}

func newModelFromResponse(resp ast.ModelResponse) Model {
	m := Model{values: make(map[string]ast.Term, len(resp.Definitions))}
	for _, def := range resp.Definitions {
		switch d := def.(type) {
		case ast.DefineFunCmd:
			m.values[d.Def.Name] = d.Def.Body
		case ast.DefineFunRecCmd:
			m.values[d.Def.Name] = d.Def.Body
		}
	}
	return m
}

// Eval looks up c's assigned value in the model and rewraps it as a T; the
// second return is false if the model has no entry for c's identifier.
func Eval[T Typed](m Model, c Const[T]) (T, bool) {
	term, ok := m.values[c.Name()]
	if !ok {
		var zero T
		return zero, false
	}
	return withTerm(c.Value(), term), true
}

// Raw returns the unevaluated AST term a model assigned to name, if any —
// an escape hatch for values whose theory wrapper the caller does not
// have a typed handle for.
func (m Model) Raw(name string) (ast.Term, bool) {
	t, ok := m.values[name]
	return t, ok
}

// SatResultWithModel pairs a check-sat outcome with the model obtained on
// Sat, the return of Solver.CheckSatWithModel.
type SatResultWithModel struct {
	Result SatResult
	Model  *Model // nil unless Result == Sat
}
