package backend

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 2 (spec.md §8): a reply string containing an unmatched ')' inside
// a quoted string must not make readOneForm stop reading early.
func TestReadOneFormParenInsideString(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(`"Hello, unmatched paren! :)"` + "\n"))
	form, err := readOneForm(r)
	require.NoError(t, err)
	require.Equal(t, `"Hello, unmatched paren! :)"`, form)
}

func TestReadOneFormBalancedList(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(`(model (define-fun x () Int 1))` + "\n"))
	form, err := readOneForm(r)
	require.NoError(t, err)
	require.Equal(t, `(model (define-fun x () Int 1))`, form)
}

func TestReadOneFormBareAtom(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("sat\n"))
	form, err := readOneForm(r)
	require.NoError(t, err)
	require.Equal(t, "sat", form)
}
