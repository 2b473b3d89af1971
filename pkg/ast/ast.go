// Package ast models the closed set of SMT-LIB v2.6 command, response, term,
// sort, identifier, and attribute variants as a typed abstract syntax tree,
// together with a recursive-descent parser and an S-expression serializer
// that round-trips through it (spec.md §3-§4.3).
package ast

import (
	"fmt"
	"strings"

	"go.smtlib.dev/smtlib/pkg/lexicon"
)

// ----------------------------------------------------------------------------
// Identifiers & sorts

// Index is one element of an Indexed identifier: either a Numeral or a
// Symbol (spec.md §3).
type Index struct {
	Numeral  string // set when !IsSymbol
	Symbol   string // set when IsSymbol
	IsSymbol bool
}

func (i Index) String() string {
	if i.IsSymbol {
		return QuoteSymbolIfNeeded(i.Symbol)
	}
	return i.Numeral
}

// Identifier is either Simple(Symbol) or Indexed(Symbol, [Index]).
type Identifier struct {
	Symbol  string
	Indices []Index // nil for a Simple identifier
}

func SimpleIdent(symbol string) Identifier { return Identifier{Symbol: symbol} }

func (id Identifier) IsIndexed() bool { return len(id.Indices) > 0 }

func (id Identifier) String() string {
	if !id.IsIndexed() {
		return QuoteSymbolIfNeeded(id.Symbol)
	}
	parts := make([]string, 0, len(id.Indices)+2)
	parts = append(parts, "_", QuoteSymbolIfNeeded(id.Symbol))
	for _, idx := range id.Indices {
		parts = append(parts, idx.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// QualIdentifier is either a bare identifier or a sort-annotated
// `(as identifier sort)` form.
type QualIdentifier struct {
	Ident   Identifier
	Sort    *Sort // nil when not sort-qualified
	Literal bool  // true for a sort-qualified theory literal (e.g. finite-field `(as ff1 F)`), never a declarable name
}

func Unsorted(id Identifier) QualIdentifier { return QualIdentifier{Ident: id} }

func Sorted(id Identifier, sort Sort) QualIdentifier {
	return QualIdentifier{Ident: id, Sort: &sort}
}

// SortedLiteral builds a sort-qualified identifier for a theory literal
// that happens to share the `(as id sort)` surface syntax with a named
// constant reference but must never be auto-declared: see AllConsts.
func SortedLiteral(id Identifier, sort Sort) QualIdentifier {
	return QualIdentifier{Ident: id, Sort: &sort, Literal: true}
}

func (qi QualIdentifier) String() string {
	if qi.Sort == nil {
		return qi.Ident.String()
	}
	return fmt.Sprintf("(as %s %s)", qi.Ident, qi.Sort)
}

// Equal reports structural equality by comparing the rendered forms.
func (qi QualIdentifier) Equal(other QualIdentifier) bool {
	return qi.String() == other.String()
}

// Sort is either a bare identifier or a parametric `(identifier sort...)`
// application.
type Sort struct {
	Ident Identifier
	Args  []Sort // nil for a bare sort
}

func BareSort(id Identifier) Sort { return Sort{Ident: id} }

func (s Sort) String() string {
	if len(s.Args) == 0 {
		return s.Ident.String()
	}
	parts := make([]string, 0, len(s.Args)+1)
	parts = append(parts, s.Ident.String())
	for _, a := range s.Args {
		parts = append(parts, a.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (s Sort) Equal(other Sort) bool { return s.String() == other.String() }

// ----------------------------------------------------------------------------
// Generic S-expressions, used for attribute values that are not a bare
// constant or symbol (spec.md §3).

type SExpr interface {
	fmt.Stringer
	isSExpr()
}

type SExprConst struct{ Value SpecConstant }
type SExprSymbol struct{ Symbol string }
type SExprKeyword struct{ Keyword string }
type SExprList struct{ Items []SExpr }

func (SExprConst) isSExpr()   {}
func (SExprSymbol) isSExpr()  {}
func (SExprKeyword) isSExpr() {}
func (SExprList) isSExpr()    {}

func (s SExprConst) String() string   { return s.Value.String() }
func (s SExprSymbol) String() string  { return QuoteSymbolIfNeeded(s.Symbol) }
func (s SExprKeyword) String() string { return s.Keyword }
func (s SExprList) String() string {
	parts := make([]string, len(s.Items))
	for i, it := range s.Items {
		parts[i] = it.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// ----------------------------------------------------------------------------
// Symbol quoting

// symbolSpecialChars mirrors the lexicon's constant of the same name: the
// non-alphanumeric characters a simple (unquoted) symbol may be made of.
const symbolSpecialChars = "+-/*=%?!.$_~&^<>@"

func isSimpleSymbolStartByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || strings.IndexByte(symbolSpecialChars, b) >= 0
}

func isSimpleSymbolByte(b byte) bool {
	return isSimpleSymbolStartByte(b) || (b >= '0' && b <= '9')
}

// NeedsQuoting reports whether s cannot be rendered as a simple symbol and
// must be wrapped in `|...|`.
func NeedsQuoting(s string) bool {
	if s == "" {
		return true
	}
	if !isSimpleSymbolStartByte(s[0]) {
		return true
	}
	for i := 1; i < len(s); i++ {
		if !isSimpleSymbolByte(s[i]) {
			return true
		}
	}
	return false
}

// QuoteSymbolIfNeeded renders s as a simple symbol when possible, or wraps
// it in `|...|` otherwise (spec.md §4.3).
func QuoteSymbolIfNeeded(s string) string {
	// Already carries its own quoting (e.g. produced by a prior render pass).
	if strings.HasPrefix(s, "|") && strings.HasSuffix(s, "|") && len(s) >= 2 {
		return s
	}
	if NeedsQuoting(s) {
		return "|" + s + "|"
	}
	return s
}

// ----------------------------------------------------------------------------
// Literal constants

// SpecConstant wraps a numeral, decimal, hex, binary, string, or
// field-element literal (spec.md §3), preserving its exact surface form.
type SpecConstant struct {
	Kind lexicon.Kind
	Text string
}

func (c SpecConstant) String() string { return c.Text }
