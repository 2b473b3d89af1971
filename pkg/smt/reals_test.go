package smt

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestRealLiteralRendering(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"3.5", "3.5"},
		{"3", "3.0"},
		{"-2.25", "(- 2.25)"},
		{"-4", "(- 4.0)"},
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.in)
		require.NoError(t, err)
		require.Equal(t, c.want, RealLit(d).Term().String())
	}
}

func TestFromFloatAndFromDecimalString(t *testing.T) {
	require.Equal(t, "3.5", FromFloat(3.5).Term().String())
	require.Equal(t, "(- 2.25)", FromFloat(-2.25).Term().String())

	r, err := FromDecimalString("3.14")
	require.NoError(t, err)
	require.Equal(t, "3.14", r.Term().String())

	_, err = FromDecimalString("not-a-number")
	require.Error(t, err)
}

func TestRealArithmeticAndComparisons(t *testing.T) {
	x := RealConst("x").Value()
	y := RealConst("y").Value()

	require.Equal(t, "(+ x y)", rendered(x.Add(y).Term()))
	require.Equal(t, "(- x y)", rendered(x.Sub(y).Term()))
	require.Equal(t, "(* x y)", rendered(x.Mul(y).Term()))
	require.Equal(t, "(/ x y)", rendered(x.Div(y).Term()))
	require.Equal(t, "(- x)", rendered(x.Neg().Term()))

	require.Equal(t, "(< x y)", rendered(x.Lt(y).Term()))
	require.Equal(t, "(<= x y)", rendered(x.Le(y).Term()))
	require.Equal(t, "(> x y)", rendered(x.Gt(y).Term()))
	require.Equal(t, "(>= x y)", rendered(x.Ge(y).Term()))
}
