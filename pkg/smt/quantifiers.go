package smt

import "go.smtlib.dev/smtlib/pkg/ast"

// QuantifierVar is one bound variable of a forall/exists: a name and the
// sort it ranges over, drawn either from a Const[T] or an explicit
// (name, sort) pair (spec.md §4.6).
type QuantifierVar struct {
	Name string
	Sort ast.Sort
}

// VarOf builds a QuantifierVar from a Const[T]'s name and sort.
func VarOf[T Typed](c Const[T]) QuantifierVar {
	return QuantifierVar{Name: c.Name(), Sort: c.SortOf()}
}

func renderVars(vars []QuantifierVar) []ast.SortedVar {
	out := make([]ast.SortedVar, len(vars))
	for i, v := range vars {
		out[i] = ast.SortedVar{Symbol: v.Name, Sort: v.Sort}
	}
	return out
}

// Forall emits `(forall ((v1 s1) ... (vn sn)) body)`.
func Forall(vars []QuantifierVar, body Bool) Bool {
	return Bool{term: ast.ForallTerm{Vars: renderVars(vars), Body: body.term}}
}

// Exists emits `(exists ((v1 s1) ... (vn sn)) body)`.
func Exists(vars []QuantifierVar, body Bool) Bool {
	return Bool{term: ast.ExistsTerm{Vars: renderVars(vars), Body: body.term}}
}
