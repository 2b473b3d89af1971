package smt

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldElementLiteralReducesModulo(t *testing.T) {
	p := big.NewInt(17)

	lit := FieldElementLit(big.NewInt(5), p)
	require.Equal(t, "(as ff5 F)", lit.Term().String())

	// a value outside [0, p) is reduced before naming the literal, and the
	// caller's big.Int is left untouched.
	v := big.NewInt(23)
	lit2 := FieldElementLit(v, p)
	require.Equal(t, "(as ff6 F)", lit2.Term().String())
	require.Equal(t, int64(23), v.Int64())
}

func TestFieldElementSortRendering(t *testing.T) {
	p := big.NewInt(17)
	c := FieldElementConst("x", p)
	require.Equal(t, "(_ FiniteField 17)", c.SortOf().String())
}

func TestFieldElementOperators(t *testing.T) {
	p := big.NewInt(17)
	a := FieldElementConst("a", p).Value()
	b := FieldElementConst("b", p).Value()

	require.Equal(t, "(ff.add a b)", rendered(a.Add(b).Term()))
	require.Equal(t, "(ff.mul a b)", rendered(a.Mul(b).Term()))
	require.Equal(t, "(ff.neg a)", rendered(a.Neg().Term()))
}
