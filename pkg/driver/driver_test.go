package driver

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.smtlib.dev/smtlib/pkg/ast"
	"go.smtlib.dev/smtlib/pkg/backend"
)

func TestNewEnablesPrintSuccess(t *testing.T) {
	b := backend.NewScriptBackend("success")
	d, err := New(b)
	require.NoError(t, err)
	require.Len(t, b.Sent, 1)
	require.Equal(t, "(set-option :print-success true)", b.Sent[0])
	require.NoError(t, d.Close())
}

func TestExecCheckSat(t *testing.T) {
	b := backend.NewScriptBackend("success", "sat")
	d, err := New(b)
	require.NoError(t, err)

	resp, err := d.Exec(ast.CheckSatCmd{})
	require.NoError(t, err)
	require.True(t, resp.Success)
	cs, ok := resp.Specific.(ast.CheckSatResponse)
	require.True(t, ok)
	require.True(t, cs.Sat)
}

func TestExecSmtErrorResponse(t *testing.T) {
	b := backend.NewScriptBackend("success", `(error "unknown sort Foo")`)
	d, err := New(b)
	require.NoError(t, err)

	_, err = d.Exec(ast.CheckSatCmd{})
	require.Error(t, err)
	var smtErr *SmtError
	require.ErrorAs(t, err, &smtErr)
	require.Equal(t, "unknown sort Foo", smtErr.Message)
}

func TestExecEchoRoundTrip(t *testing.T) {
	b := backend.NewScriptBackend("success", `"hello world"`)
	d, err := New(b)
	require.NoError(t, err)

	resp, err := d.Exec(ast.EchoCmd{Text: "hello world"})
	require.NoError(t, err)
	echo, ok := resp.Specific.(ast.EchoResponse)
	require.True(t, ok)
	require.Equal(t, "hello world", echo.Text)
}

// Scenario 1 (spec.md §8): echo round-trip with the exact scenario text.
func TestScenarioEchoRoundTrip(t *testing.T) {
	b := backend.NewScriptBackend("success", `"Hello, world!"`)
	d, err := New(b)
	require.NoError(t, err)

	resp, err := d.Exec(ast.EchoCmd{Text: "Hello, world!"})
	require.NoError(t, err)
	echo, ok := resp.Specific.(ast.EchoResponse)
	require.True(t, ok)
	require.Equal(t, "Hello, world!", echo.Text)
}

func TestExecUnsupported(t *testing.T) {
	b := backend.NewScriptBackend("success", "unsupported")
	d, err := New(b)
	require.NoError(t, err)

	resp, err := d.Exec(ast.GetProofCmd{})
	require.NoError(t, err)
	require.True(t, resp.Unsupported)
}
