package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParseTerm(t *testing.T, src string) Term {
	t.Helper()
	p, err := NewParser([]byte(src))
	require.NoError(t, err)
	term, err := ParseTerm(p)
	require.NoError(t, err)
	require.NoError(t, p.ExpectEOF())
	return term
}

func mustParseCommand(t *testing.T, src string) Command {
	t.Helper()
	p, err := NewParser([]byte(src))
	require.NoError(t, err)
	cmd, err := ParseCommand(p)
	require.NoError(t, err)
	require.NoError(t, p.ExpectEOF())
	return cmd
}

func TestTermRoundTrip(t *testing.T) {
	cases := []string{
		"42",
		"x",
		"(+ x y)",
		"(as x Int)",
		"(let ((a 1) (b 2)) (+ a b))",
		"(forall ((x Int) (y Int)) (= x y))",
		"(exists ((x Int)) (> x 0))",
		"(! x :named foo)",
		"(match lst (((cons h t) h) (nil 0)))",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			term := mustParseTerm(t, src)
			require.Equal(t, src, term.String())
		})
	}
}

func TestCommandRoundTrip(t *testing.T) {
	cases := []string{
		"(assert (> x 0))",
		"(check-sat)",
		"(declare-const x Int)",
		"(declare-fun f (Int Int) Bool)",
		"(declare-sort S 0)",
		"(define-sort F () (_ FiniteField 17))",
		"(push 2)",
		"(pop 1)",
		"(set-logic QF_LIA)",
		"(set-option :print-success true)",
		"(get-value (x y))",
		"(echo \"hi\")",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			cmd := mustParseCommand(t, src)
			require.Equal(t, src, cmd.String())
		})
	}
}

func TestQuotedSymbolRoundTrip(t *testing.T) {
	term := mustParseTerm(t, "|a symbol with spaces|")
	require.Equal(t, "|a symbol with spaces|", term.String())
}

func TestEscapedStringEchoRoundTrip(t *testing.T) {
	cmd := mustParseCommand(t, `(echo "she said ""hi""")`)
	echo, ok := cmd.(EchoCmd)
	require.True(t, ok)
	require.Equal(t, `she said "hi"`, echo.Text)
	require.Equal(t, `(echo "she said ""hi""")`, echo.String())
}

func TestAllConstsShadowing(t *testing.T) {
	x := QualIdentifier{Ident: SimpleIdent("x"), Sort: ptrSort(BareSort(SimpleIdent("Int")))}
	y := QualIdentifier{Ident: SimpleIdent("y"), Sort: ptrSort(BareSort(SimpleIdent("Int")))}

	// (forall ((x Int)) (= x y)) — the outer `x` constant is shadowed by the
	// bound variable, so only `y` should be reported.
	term := ForallTerm{
		Vars: []SortedVar{{Symbol: "x", Sort: BareSort(SimpleIdent("Int"))}},
		Body: AppTerm{Func: Unsorted(SimpleIdent("=")), Args: []Term{
			IdentTerm{Ident: x},
			IdentTerm{Ident: y},
		}},
	}

	got := AllConsts(term)
	require.Len(t, got, 1)
	require.True(t, got[0].Equal(y))
}

func TestStripSortRemovesAnnotations(t *testing.T) {
	x := QualIdentifier{Ident: SimpleIdent("x"), Sort: ptrSort(BareSort(SimpleIdent("Int")))}
	term := IdentTerm{Ident: x}
	stripped := StripSort(term)
	require.Equal(t, "x", stripped.String())
}

// A Literal-flagged identifier (a theory literal like the finite-field
// `(as ff1 F)` form) must never be treated as a declarable name: AllConsts
// skips it, and StripSort must leave its sort annotation in place since the
// annotation is the literal's own surface syntax, not redundant noise.
func TestAllConstsSkipsLiteralIdentifiers(t *testing.T) {
	f := BareSort(SimpleIdent("F"))
	lit := SortedLiteral(SimpleIdent("ff1"), f)
	x := Sorted(SimpleIdent("x"), f)

	// (= x (as ff1 F))
	term := AppTerm{Func: Unsorted(SimpleIdent("=")), Args: []Term{
		IdentTerm{Ident: x},
		IdentTerm{Ident: lit},
	}}

	got := AllConsts(term)
	require.Len(t, got, 1)
	require.True(t, got[0].Equal(x))
}

func TestStripSortKeepsLiteralAnnotations(t *testing.T) {
	f := BareSort(SimpleIdent("F"))
	lit := SortedLiteral(SimpleIdent("ff1"), f)
	x := Sorted(SimpleIdent("x"), f)

	term := AppTerm{Func: Unsorted(SimpleIdent("=")), Args: []Term{
		IdentTerm{Ident: x},
		IdentTerm{Ident: lit},
	}}

	stripped := StripSort(term)
	require.Equal(t, "(= x (as ff1 F))", stripped.String())
}

func ptrSort(s Sort) *Sort { return &s }
