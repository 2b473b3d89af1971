package lexicon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.smtlib.dev/smtlib/pkg/lexicon"
)

func TestLexSingleTokens(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind lexicon.Kind
	}{
		{"numeral zero", "0", lexicon.KindNumeral},
		{"numeral", "1024", lexicon.KindNumeral},
		{"decimal", "3.14", lexicon.KindDecimal},
		{"decimal leading zero after dot", "1.00", lexicon.KindDecimal},
		{"hexadecimal", "#xFF01", lexicon.KindHexadecimal},
		{"binary", "#b0", lexicon.KindBinary},
		{"field element", "ff5", lexicon.KindFieldElement},
		{"simple symbol", "my-var", lexicon.KindSymbol},
		{"quoted symbol", "|my var|", lexicon.KindSymbol},
		{"empty quoted symbol", "||", lexicon.KindSymbol},
		{"keyword", ":named", lexicon.KindKeyword},
		{"reserved", "forall", lexicon.KindReserved},
		{"string", `"hello"`, lexicon.KindString},
		{"empty string", `""`, lexicon.KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := lexicon.Lex([]byte(tt.src))
			require.NoError(t, err)
			require.Len(t, tokens, 2) // token + EOF
			require.Equal(t, tt.kind, tokens[0].Kind)
			require.Equal(t, tt.src, tokens[0].Text)
		})
	}
}

func TestLexEscapedString(t *testing.T) {
	tokens, err := lexicon.Lex([]byte(`"Hello ""world"" this is cool!"`))
	require.NoError(t, err)
	require.Equal(t, lexicon.KindString, tokens[0].Kind)
	require.Equal(t, `"Hello ""world"" this is cool!"`, tokens[0].Text)
}

func TestLexBitvecWidthOne(t *testing.T) {
	tokens, err := lexicon.Lex([]byte("#b0"))
	require.NoError(t, err)
	require.Equal(t, lexicon.KindBinary, tokens[0].Kind)
	require.Equal(t, "#b0", tokens[0].Text)
}

func TestLexNegativeNumeralIsNotANumeral(t *testing.T) {
	// "-5" is a simple symbol (digits may continue a symbol that starts with
	// '-'), never a Numeral; a negative integer is written `(- 5)`.
	tokens, err := lexicon.Lex([]byte("-5"))
	require.NoError(t, err)
	require.Equal(t, lexicon.KindSymbol, tokens[0].Kind)
	require.Equal(t, "-5", tokens[0].Text)
	require.Equal(t, lexicon.KindEOF, tokens[1].Kind)
	require.Len(t, tokens, 2)
}

func TestLexComment(t *testing.T) {
	tokens, err := lexicon.Lex([]byte("x ; this is a comment\ny"))
	require.NoError(t, err)
	require.Equal(t, []lexicon.Kind{lexicon.KindSymbol, lexicon.KindSymbol, lexicon.KindEOF},
		[]lexicon.Kind{tokens[0].Kind, tokens[1].Kind, tokens[2].Kind})
}

func TestLexStructuralParens(t *testing.T) {
	tokens, err := lexicon.Lex([]byte("(check-sat)"))
	require.NoError(t, err)
	kinds := make([]lexicon.Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	require.Equal(t, []lexicon.Kind{
		lexicon.KindLParen, lexicon.KindSymbol, lexicon.KindRParen, lexicon.KindEOF,
	}, kinds)
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unterminated string", `"hello`},
		{"bad hex digit", "#x"},
		{"bad binary digit", "#b"},
		{"unknown char", "`"},
		{"unterminated quoted symbol", "|abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lexicon.Lex([]byte(tt.src))
			require.Error(t, err)
		})
	}
}

func TestLexRoundTrip(t *testing.T) {
	// Lex round-trip: lex(render(t)) = [t] — for a single token, re-lexing
	// its own text yields exactly the same kind and text back.
	srcs := []string{"0", "42", "3.14", "#xFF", "#b101", "ff3", "abc",
		"|quoted sym|", ":key", "forall", `"a string"`}

	for _, src := range srcs {
		first, err := lexicon.Lex([]byte(src))
		require.NoError(t, err)
		second, err := lexicon.Lex([]byte(first[0].Text))
		require.NoError(t, err)
		require.Equal(t, first[0].Kind, second[0].Kind)
		require.Equal(t, first[0].Text, second[0].Text)
	}
}
