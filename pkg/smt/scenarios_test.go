package smt

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go.smtlib.dev/smtlib/pkg/backend"
)

// Scenario 3 (spec.md §8): eight integer constants under QF_IDL, bounded to
// 0..7, pairwise distinct, with pairwise distinct diagonals — a valid
// 8-queens solution comes back as the model.
func TestScenarioEightQueensIDL(t *testing.T) {
	const n = 8
	solution := [n]int64{0, 4, 7, 5, 2, 6, 1, 3}

	responses := []string{"success", "success"} // print-success, set-logic
	for i := 0; i < n; i++ {
		responses = append(responses, "success") // declare-const xi, auto-declared
	}
	responses = append(responses,
		"success", // bounds assert
		"success", // distinct values assert
		"success", // distinct diagonal assert
		"sat",
	)

	var modelParts []string
	for i := 0; i < n; i++ {
		modelParts = append(modelParts, fmt.Sprintf("(define-fun x%d () Int %d)", i, solution[i]))
	}
	responses = append(responses, "("+strings.Join(modelParts, " ")+")")

	b := backend.NewScriptBackend(responses...)
	s, err := New(b)
	require.NoError(t, err)
	require.NoError(t, s.SetLogic("QF_IDL"))

	xs := make([]Const[Int], n)
	for i := range xs {
		xs[i] = IntConst(fmt.Sprintf("x%d", i))
	}

	bounds := make([]Bool, n)
	for i, x := range xs {
		bounds[i] = x.Value().Ge(IntLit(0)).And(x.Value().Lt(IntLit(n)))
	}
	require.NoError(t, s.Assert(AndAll(bounds...)))

	vals := make([]Int, n)
	for i, x := range xs {
		vals[i] = x.Value()
	}
	require.NoError(t, s.Assert(Distinct(vals...)))

	diffs := make([]Int, n)
	for i, x := range xs {
		diffs[i] = x.Value().Sub(IntLit(int64(i)))
	}
	require.NoError(t, s.Assert(Distinct(diffs...)))

	result, err := s.CheckSat()
	require.NoError(t, err)
	require.Equal(t, Sat, result)

	model, err := s.GetModel()
	require.NoError(t, err)

	seenVal, seenDiff := map[int64]bool{}, map[int64]bool{}
	got := make([]int64, n)
	for i, x := range xs {
		v, ok := Eval(model, x)
		require.True(t, ok)
		col, err := strconv.ParseInt(v.Term().String(), 10, 64)
		require.NoError(t, err)
		require.False(t, seenVal[col], "row %d repeats a column already used", i)
		seenVal[col] = true
		diff := col - int64(i)
		require.False(t, seenDiff[diff], "row %d repeats a diagonal already used", i)
		seenDiff[diff] = true
		got[i] = col
	}
	require.Equal(t, solution[:], got)
}

// Scenario 4 (spec.md §8): a finite-field example that goes sat then unsat
// once the second constant is pinned to the same literal as the first. This
// is the scenario that exercises FieldElementLit's auto-declare exemption:
// if `ff1`/`ff2` were ever treated as declarable names, the strengthened
// assertion below would stay trivially sat instead of turning unsat.
func TestScenarioFiniteFieldSmallExample(t *testing.T) {
	b := backend.NewScriptBackend(
		"success", // print-success
		"success", // set-logic
		"success", // define-sort F
		"success", // declare-const a, auto-declared
		"success", // declare-const b, auto-declared
		"success", // assert (= (ff.mul a b) (as ff1 F))
		"success", // assert (= a (as ff2 F))
		"sat",
		"success", // assert (= b (as ff2 F))
		"unsat",
	)
	s, err := New(b)
	require.NoError(t, err)
	require.NoError(t, s.SetLogic("QF_FF"))

	prime := big.NewInt(5)
	require.NoError(t, s.SetFieldOrder(prime))

	a := FieldElementConst("a", prime)
	bc := FieldElementConst("b", prime)
	one := FieldElementLit(big.NewInt(1), prime)
	two := FieldElementLit(big.NewInt(2), prime)

	require.NoError(t, s.Assert(Eq(a.Value().Mul(bc.Value()), one)))
	require.NoError(t, s.Assert(Eq(a.Value(), two)))

	result, err := s.CheckSat()
	require.NoError(t, err)
	require.Equal(t, Sat, result)

	require.NoError(t, s.Assert(Eq(bc.Value(), two)))

	result, err = s.CheckSat()
	require.NoError(t, err)
	require.Equal(t, Unsat, result)

	require.Equal(t, []string{
		"(set-option :print-success true)",
		"(set-logic QF_FF)",
		"(define-sort F () (_ FiniteField 5))",
		"(declare-const a (_ FiniteField 5))",
		"(declare-const b (_ FiniteField 5))",
		"(assert (= (ff.mul a b) (as ff1 F)))",
		"(assert (= a (as ff2 F)))",
		"(check-sat)",
		"(assert (= b (as ff2 F)))",
		"(check-sat)",
	}, b.Sent)
}

// Scenario 6 (spec.md §8): a constant named with a space is declared and
// rendered quoted throughout, and the model reports the value back under
// the same quoted name.
func TestScenarioQuotedSymbolConstant(t *testing.T) {
	b := backend.NewScriptBackend(
		"success", // print-success
		"success", // declare-const |my var| Int
		"success", // assert (= |my var| 7)
		"sat",
		"((define-fun |my var| () Int 7))",
	)
	s, err := New(b)
	require.NoError(t, err)

	v := IntConst("my var")
	require.NoError(t, s.Assert(Eq(v.Value(), IntLit(7))))

	result, err := s.CheckSat()
	require.NoError(t, err)
	require.Equal(t, Sat, result)

	model, err := s.GetModel()
	require.NoError(t, err)
	got, ok := Eval(model, v)
	require.True(t, ok)
	require.Equal(t, "7", got.Term().String())

	require.Equal(t, []string{
		"(set-option :print-success true)",
		"(declare-const |my var| Int)",
		"(assert (= |my var| 7))",
		"(check-sat)",
		"(get-model)",
	}, b.Sent)
}
