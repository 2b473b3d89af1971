package smt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForallExistsRendering(t *testing.T) {
	x := IntConst("x")

	forall := Forall([]QuantifierVar{VarOf(x)}, Eq(x.Value(), x.Value()))
	require.Equal(t, "(forall ((x Int)) (= x x))", rendered(forall.Term()))

	exists := Exists([]QuantifierVar{{Name: "y", Sort: x.SortOf()}}, BoolLit(true))
	require.Equal(t, "(exists ((y Int)) true)", exists.Term().String())
}

func TestLabelAnnotatesWithFreshName(t *testing.T) {
	x := IntConst("x").Value()
	l1 := NewLabel(Eq(x, x))
	l2 := NewLabel(Eq(x, x))

	require.NotEqual(t, l1.Name(), l2.Name())
	require.Contains(t, l1.Term().String(), ":named "+l1.Name())
}
