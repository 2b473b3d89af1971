package backend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScriptBackendReplaysInOrder(t *testing.T) {
	b := NewScriptBackend("success", "sat", "success")

	resp, err := b.Exec("(set-logic QF_LIA)")
	require.NoError(t, err)
	require.Equal(t, "success", resp)

	resp, err = b.Exec("(check-sat)")
	require.NoError(t, err)
	require.Equal(t, "sat", resp)

	require.Equal(t, []string{"(set-logic QF_LIA)", "(check-sat)"}, b.Sent[:2])
}

func TestScriptBackendExhaustionErrors(t *testing.T) {
	b := NewScriptBackend("success")
	_, err := b.Exec("(set-logic QF_LIA)")
	require.NoError(t, err)

	_, err = b.Exec("(check-sat)")
	require.Error(t, err)
}

func TestFuncBackendDelegates(t *testing.T) {
	b := NewFuncBackend(func(cmd string) (string, error) {
		return "(" + cmd + "-reply)", nil
	})

	resp, err := b.Exec("ping")
	require.NoError(t, err)
	require.Equal(t, "(ping-reply)", resp)
	require.Equal(t, []string{"ping"}, b.Sent)
}
