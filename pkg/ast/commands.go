package ast

import "strings"

// Command is the sum type of every SMT-LIB script command (spec.md §3).
type Command interface {
	isCommand()
	String() string
}

// ConstructorDecl and DatatypeDecl support the declare-datatype(s) family.

// ConstructorDecl is one `(name (selector sort)...)` constructor of a
// datatype declaration.
type ConstructorDecl struct {
	Name      string
	Selectors []SortedVar
}

func (c ConstructorDecl) String() string {
	if len(c.Selectors) == 0 {
		return QuoteSymbolIfNeeded(c.Name)
	}
	parts := make([]string, 0, len(c.Selectors)+1)
	parts = append(parts, QuoteSymbolIfNeeded(c.Name))
	for _, s := range c.Selectors {
		parts = append(parts, "("+QuoteSymbolIfNeeded(s.Symbol)+" "+s.Sort.String()+")")
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// DatatypeDecl is one `(par (params...) (constructors...))` or bare
// `(constructors...)` datatype body.
type DatatypeDecl struct {
	Params       []string
	Constructors []ConstructorDecl
}

func (d DatatypeDecl) String() string {
	ctors := make([]string, len(d.Constructors))
	for i, c := range d.Constructors {
		ctors[i] = c.String()
	}
	body := strings.Join(ctors, " ")
	if len(d.Params) == 0 {
		return "(" + body + ")"
	}
	params := make([]string, len(d.Params))
	for i, p := range d.Params {
		params[i] = QuoteSymbolIfNeeded(p)
	}
	return "(par (" + strings.Join(params, " ") + ") (" + body + "))"
}

// FunctionDef is the shared shape of define-fun / define-fun-rec signatures.
type FunctionDef struct {
	Name   string
	Params []SortedVar
	Result Sort
	Body   Term
}

func (f FunctionDef) signature() string {
	return "(" + QuoteSymbolIfNeeded(f.Name) + " " + renderSortedVars(f.Params) + " " + f.Result.String() + ")"
}

// -- Assertion & control ------------------------------------------------------

type AssertCmd struct{ Term Term }
type CheckSatCmd struct{}
type CheckSatAssumingCmd struct{ Assumptions []QualIdentifier }
type PushCmd struct{ N int }
type PopCmd struct{ N int }
type ResetCmd struct{}
type ResetAssertionsCmd struct{}
type ExitCmd struct{}

// -- Declarations & definitions ----------------------------------------------

type DeclareConstCmd struct {
	Name string
	Sort Sort
}
type DeclareFunCmd struct {
	Name   string
	Params []Sort
	Result Sort
}
type DeclareSortCmd struct {
	Name  string
	Arity int
}
type DefineSortCmd struct {
	Name   string
	Params []string
	Body   Sort
}
type DeclareDatatypeCmd struct {
	Name string
	Decl DatatypeDecl
}
type DeclareDatatypesCmd struct {
	Sorts []SortedVarArity // (name arity) pairs
	Decls []DatatypeDecl
}
type DefineFunCmd struct{ Def FunctionDef }
type DefineFunRecCmd struct{ Def FunctionDef }
type DefineFunsRecCmd struct {
	Defs  []FunctionDef
	Bodies []Term
}

// SortedVarArity is a `(name arity)` pair as used by declare-datatypes.
type SortedVarArity struct {
	Name  string
	Arity int
}

// -- Introspection & info -----------------------------------------------------

type GetAssertionsCmd struct{}
type GetAssignmentCmd struct{}
type GetInfoCmd struct{ Keyword string }
type GetModelCmd struct{}
type GetOptionCmd struct{ Keyword string }
type GetProofCmd struct{}
type GetUnsatAssumptionsCmd struct{}
type GetUnsatCoreCmd struct{}
type GetValueCmd struct{ Terms []Term }

type SetInfoCmd struct{ Attr Attribute }
type SetLogicCmd struct{ Logic string }
type SetOptionCmd struct{ Attr Attribute }
type EchoCmd struct{ Text string }

func (AssertCmd) isCommand()              {}
func (CheckSatCmd) isCommand()            {}
func (CheckSatAssumingCmd) isCommand()    {}
func (PushCmd) isCommand()                {}
func (PopCmd) isCommand()                 {}
func (ResetCmd) isCommand()               {}
func (ResetAssertionsCmd) isCommand()     {}
func (ExitCmd) isCommand()                {}
func (DeclareConstCmd) isCommand()        {}
func (DeclareFunCmd) isCommand()          {}
func (DeclareSortCmd) isCommand()         {}
func (DefineSortCmd) isCommand()          {}
func (DeclareDatatypeCmd) isCommand()     {}
func (DeclareDatatypesCmd) isCommand()    {}
func (DefineFunCmd) isCommand()           {}
func (DefineFunRecCmd) isCommand()        {}
func (DefineFunsRecCmd) isCommand()       {}
func (GetAssertionsCmd) isCommand()       {}
func (GetAssignmentCmd) isCommand()       {}
func (GetInfoCmd) isCommand()             {}
func (GetModelCmd) isCommand()            {}
func (GetOptionCmd) isCommand()           {}
func (GetProofCmd) isCommand()            {}
func (GetUnsatAssumptionsCmd) isCommand() {}
func (GetUnsatCoreCmd) isCommand()        {}
func (GetValueCmd) isCommand()            {}
func (SetInfoCmd) isCommand()             {}
func (SetLogicCmd) isCommand()            {}
func (SetOptionCmd) isCommand()           {}
func (EchoCmd) isCommand()                {}

func (c AssertCmd) String() string { return "(assert " + c.Term.String() + ")" }
func (CheckSatCmd) String() string { return "(check-sat)" }
func (c CheckSatAssumingCmd) String() string {
	ids := make([]string, len(c.Assumptions))
	for i, a := range c.Assumptions {
		ids[i] = a.String()
	}
	return "(check-sat-assuming (" + strings.Join(ids, " ") + "))"
}
func (c PushCmd) String() string  { return "(push " + itoa(c.N) + ")" }
func (c PopCmd) String() string   { return "(pop " + itoa(c.N) + ")" }
func (ResetCmd) String() string   { return "(reset)" }
func (ResetAssertionsCmd) String() string { return "(reset-assertions)" }
func (ExitCmd) String() string    { return "(exit)" }

func (c DeclareConstCmd) String() string {
	return "(declare-const " + QuoteSymbolIfNeeded(c.Name) + " " + c.Sort.String() + ")"
}
func (c DeclareFunCmd) String() string {
	params := make([]string, len(c.Params))
	for i, p := range c.Params {
		params[i] = p.String()
	}
	return "(declare-fun " + QuoteSymbolIfNeeded(c.Name) + " (" + strings.Join(params, " ") + ") " + c.Result.String() + ")"
}
func (c DeclareSortCmd) String() string {
	return "(declare-sort " + QuoteSymbolIfNeeded(c.Name) + " " + itoa(c.Arity) + ")"
}
func (c DefineSortCmd) String() string {
	params := make([]string, len(c.Params))
	for i, p := range c.Params {
		params[i] = QuoteSymbolIfNeeded(p)
	}
	return "(define-sort " + QuoteSymbolIfNeeded(c.Name) + " (" + strings.Join(params, " ") + ") " + c.Body.String() + ")"
}
func (c DeclareDatatypeCmd) String() string {
	return "(declare-datatype " + QuoteSymbolIfNeeded(c.Name) + " " + c.Decl.String() + ")"
}
func (c DeclareDatatypesCmd) String() string {
	sorts := make([]string, len(c.Sorts))
	for i, s := range c.Sorts {
		sorts[i] = "(" + QuoteSymbolIfNeeded(s.Name) + " " + itoa(s.Arity) + ")"
	}
	decls := make([]string, len(c.Decls))
	for i, d := range c.Decls {
		decls[i] = d.String()
	}
	return "(declare-datatypes (" + strings.Join(sorts, " ") + ") (" + strings.Join(decls, " ") + "))"
}
func (c DefineFunCmd) String() string {
	return "(define-fun " + QuoteSymbolIfNeeded(c.Def.Name) + " " + renderSortedVars(c.Def.Params) + " " + c.Def.Result.String() + " " + c.Def.Body.String() + ")"
}
func (c DefineFunRecCmd) String() string {
	return "(define-fun-rec " + QuoteSymbolIfNeeded(c.Def.Name) + " " + renderSortedVars(c.Def.Params) + " " + c.Def.Result.String() + " " + c.Def.Body.String() + ")"
}
func (c DefineFunsRecCmd) String() string {
	sigs := make([]string, len(c.Defs))
	for i, d := range c.Defs {
		sigs[i] = d.signature()
	}
	bodies := make([]string, len(c.Bodies))
	for i, b := range c.Bodies {
		bodies[i] = b.String()
	}
	return "(define-funs-rec (" + strings.Join(sigs, " ") + ") (" + strings.Join(bodies, " ") + "))"
}

func (GetAssertionsCmd) String() string { return "(get-assertions)" }
func (GetAssignmentCmd) String() string { return "(get-assignment)" }
func (c GetInfoCmd) String() string     { return "(get-info " + c.Keyword + ")" }
func (GetModelCmd) String() string      { return "(get-model)" }
func (c GetOptionCmd) String() string   { return "(get-option " + c.Keyword + ")" }
func (GetProofCmd) String() string      { return "(get-proof)" }
func (GetUnsatAssumptionsCmd) String() string { return "(get-unsat-assumptions)" }
func (GetUnsatCoreCmd) String() string  { return "(get-unsat-core)" }
func (c GetValueCmd) String() string {
	terms := make([]string, len(c.Terms))
	for i, t := range c.Terms {
		terms[i] = t.String()
	}
	return "(get-value (" + strings.Join(terms, " ") + "))"
}

func (c SetInfoCmd) String() string   { return "(set-info " + c.Attr.String() + ")" }
func (c SetLogicCmd) String() string  { return "(set-logic " + c.Logic + ")" }
func (c SetOptionCmd) String() string { return "(set-option " + c.Attr.String() + ")" }
func (c EchoCmd) String() string      { return "(echo " + quoteString(c.Text) + ")" }

func quoteString(s string) string {
	return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
