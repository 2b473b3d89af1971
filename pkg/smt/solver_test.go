package smt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.smtlib.dev/smtlib/pkg/backend"
)

func TestAssertAutoDeclares(t *testing.T) {
	b := backend.NewScriptBackend("success", "success", "success")
	s, err := New(b)
	require.NoError(t, err)

	x := IntConst("x")
	require.NoError(t, s.Assert(x.Value().Gt(IntLit(0))))

	require.Equal(t, []string{
		"(set-option :print-success true)",
		"(declare-const x Int)",
		"(assert (> x 0))",
	}, b.Sent)
}

func TestAssertDeclaresOnce(t *testing.T) {
	b := backend.NewScriptBackend("success", "success", "success", "success")
	s, err := New(b)
	require.NoError(t, err)

	x := IntConst("x")
	require.NoError(t, s.Assert(x.Value().Gt(IntLit(0))))
	require.NoError(t, s.Assert(x.Value().Lt(IntLit(10))))

	require.Equal(t, []string{
		"(set-option :print-success true)",
		"(declare-const x Int)",
		"(assert (> x 0))",
		"(assert (< x 10))",
	}, b.Sent)
}

func TestAssertSortMismatch(t *testing.T) {
	b := backend.NewScriptBackend("success", "success", "success")
	s, err := New(b)
	require.NoError(t, err)

	x := IntConst("x")
	require.NoError(t, s.Assert(x.Value().Gt(IntLit(0))))

	collided := BoolConst("x")
	err = s.Assert(collided.Value())
	require.Error(t, err)
	var mismatch *SortMismatch
	require.ErrorAs(t, err, &mismatch)
}

func TestCheckSatWithModel(t *testing.T) {
	b := backend.NewScriptBackend(
		"success",
		"success",
		"success",
		"sat",
		"(model (define-fun x () Int 5))",
	)
	s, err := New(b)
	require.NoError(t, err)

	x := IntConst("x")
	require.NoError(t, s.Assert(x.Value().Ge(IntLit(0))))

	result, err := s.CheckSatWithModel()
	require.NoError(t, err)
	require.Equal(t, Sat, result.Result)
	require.NotNil(t, result.Model)

	val, ok := Eval(*result.Model, x)
	require.True(t, ok)
	require.Equal(t, "5", val.term.String())
}

func TestPushPop(t *testing.T) {
	b := backend.NewScriptBackend("success", "success", "success")
	s, err := New(b)
	require.NoError(t, err)

	require.NoError(t, s.Push(1))
	require.NoError(t, s.Pop(1))
	require.Equal(t, []string{
		"(set-option :print-success true)",
		"(push 1)",
		"(pop 1)",
	}, b.Sent)
}
