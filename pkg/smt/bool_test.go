package smt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.smtlib.dev/smtlib/pkg/ast"
)

// rendered strips the sort tag Const's underlying term carries (the same
// step Solver.Assert applies before sending), so these tests read the term
// shape a solver would actually receive.
func rendered(t ast.Term) string { return ast.StripSort(t).String() }

func TestBoolOperators(t *testing.T) {
	x := BoolConst("x").Value()
	y := BoolConst("y").Value()

	cases := []struct {
		name string
		term Bool
		want string
	}{
		{"and", x.And(y), "(and x y)"},
		{"or", x.Or(y), "(or x y)"},
		{"xor", x.Xor(y), "(xor x y)"},
		{"not", x.Not(), "(not x)"},
		{"implies", x.Implies(y), "(=> x y)"},
		{"true", BoolLit(true), "true"},
		{"false", BoolLit(false), "false"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, rendered(c.term.Term()))
		})
	}
}

func TestEqDistinctIte(t *testing.T) {
	x := IntConst("x").Value()
	y := IntConst("y").Value()

	require.Equal(t, "(= x y)", rendered(Eq(x, y).Term()))
	require.Equal(t, "(distinct x y)", rendered(Distinct(x, y).Term()))

	ite := Ite(Eq(x, y), x, y)
	require.Equal(t, "(ite (= x y) x y)", rendered(ite.Term()))
}

func TestAndAllOrAll(t *testing.T) {
	a := BoolConst("a").Value()
	b := BoolConst("b").Value()
	c := BoolConst("c").Value()

	require.Equal(t, "(and a b c)", rendered(AndAll(a, b, c).Term()))
	require.Equal(t, "(or a b c)", rendered(OrAll(a, b, c).Term()))
}
