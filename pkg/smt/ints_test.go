package smt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntLiteralRendering(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-7, "(- 7)"},
		{123456789, "123456789"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, IntLit(c.n).Term().String())
	}
}

func TestIntArithmeticAndComparisons(t *testing.T) {
	x := IntConst("x").Value()
	y := IntConst("y").Value()

	require.Equal(t, "(+ x y)", rendered(x.Add(y).Term()))
	require.Equal(t, "(- x y)", rendered(x.Sub(y).Term()))
	require.Equal(t, "(* x y)", rendered(x.Mul(y).Term()))
	require.Equal(t, "(div x y)", rendered(x.Div(y).Term()))
	require.Equal(t, "(mod x y)", rendered(x.Mod(y).Term()))
	require.Equal(t, "(- x)", rendered(x.Neg().Term()))
	require.Equal(t, "(abs x)", rendered(x.Abs().Term()))

	require.Equal(t, "(< x y)", rendered(x.Lt(y).Term()))
	require.Equal(t, "(<= x y)", rendered(x.Le(y).Term()))
	require.Equal(t, "(> x y)", rendered(x.Gt(y).Term()))
	require.Equal(t, "(>= x y)", rendered(x.Ge(y).Term()))
}
