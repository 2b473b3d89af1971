package ast

import "strings"

// Term is the sum type of every SMT-LIB term form (spec.md §3). Each variant
// below is a Go struct implementing Term; dispatch is by type switch rather
// than an enum tag, matching how the teacher models its own Statement and
// Expression sum types (pkg/jack.Statement, pkg/jack.Expression in the
// reference compiler this module was adapted from).
type Term interface {
	isTerm()
	String() string
}

// ConstTerm is a SpecConstant literal.
type ConstTerm struct{ Value SpecConstant }

// IdentTerm is a bare or sort-qualified identifier reference.
type IdentTerm struct{ Ident QualIdentifier }

// AppTerm is a function application; Args must be non-empty (spec.md §3).
type AppTerm struct {
	Func QualIdentifier
	Args []Term
}

// Binding is one `(symbol term)` pair of a Let term.
type Binding struct {
	Symbol string
	Value  Term
}

type LetTerm struct {
	Bindings []Binding
	Body     Term
}

// SortedVar is one `(symbol sort)` pair of a quantifier's variable list.
type SortedVar struct {
	Symbol string
	Sort   Sort
}

type ForallTerm struct {
	Vars []SortedVar
	Body Term
}

type ExistsTerm struct {
	Vars []SortedVar
	Body Term
}

// Pattern is either a bare variable/nullary-constructor symbol (Args empty)
// or a constructor application `(Symbol Args...)`.
type Pattern struct {
	Symbol string
	Args   []string
}

func (p Pattern) String() string {
	if len(p.Args) == 0 {
		return QuoteSymbolIfNeeded(p.Symbol)
	}
	parts := make([]string, 0, len(p.Args)+1)
	parts = append(parts, QuoteSymbolIfNeeded(p.Symbol))
	for _, a := range p.Args {
		parts = append(parts, QuoteSymbolIfNeeded(a))
	}
	return "(" + strings.Join(parts, " ") + ")"
}

type MatchCase struct {
	Pattern Pattern
	Body    Term
}

type MatchTerm struct {
	Scrutinee Term
	Cases     []MatchCase
}

type AnnotationTerm struct {
	Term  Term
	Attrs []Attribute
}

func (ConstTerm) isTerm()      {}
func (IdentTerm) isTerm()      {}
func (AppTerm) isTerm()        {}
func (LetTerm) isTerm()        {}
func (ForallTerm) isTerm()     {}
func (ExistsTerm) isTerm()     {}
func (MatchTerm) isTerm()      {}
func (AnnotationTerm) isTerm() {}

func (t ConstTerm) String() string { return t.Value.String() }
func (t IdentTerm) String() string { return t.Ident.String() }

func (t AppTerm) String() string {
	parts := make([]string, 0, len(t.Args)+1)
	parts = append(parts, t.Func.String())
	for _, a := range t.Args {
		parts = append(parts, a.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (t LetTerm) String() string {
	bindings := make([]string, len(t.Bindings))
	for i, b := range t.Bindings {
		bindings[i] = "(" + QuoteSymbolIfNeeded(b.Symbol) + " " + b.Value.String() + ")"
	}
	return "(let (" + strings.Join(bindings, " ") + ") " + t.Body.String() + ")"
}

func renderSortedVars(vars []SortedVar) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = "(" + QuoteSymbolIfNeeded(v.Symbol) + " " + v.Sort.String() + ")"
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (t ForallTerm) String() string {
	return "(forall " + renderSortedVars(t.Vars) + " " + t.Body.String() + ")"
}

func (t ExistsTerm) String() string {
	return "(exists " + renderSortedVars(t.Vars) + " " + t.Body.String() + ")"
}

func (t MatchTerm) String() string {
	cases := make([]string, len(t.Cases))
	for i, c := range t.Cases {
		cases[i] = "(" + c.Pattern.String() + " " + c.Body.String() + ")"
	}
	return "(match " + t.Scrutinee.String() + " (" + strings.Join(cases, " ") + "))"
}

func (t AnnotationTerm) String() string {
	attrs := make([]string, len(t.Attrs))
	for i, a := range t.Attrs {
		attrs[i] = a.String()
	}
	return "(! " + t.Term.String() + " " + strings.Join(attrs, " ") + ")"
}
