package smt

import "go.smtlib.dev/smtlib/pkg/ast"

// Bool is the Core theory's Boolean wrapper (spec.md §4.6).
type Bool struct{ term ast.Term }

func (b Bool) Term() ast.Term   { return b.term }
func (b Bool) SortOf() ast.Sort { return ast.BareSort(ast.SimpleIdent("Bool")) }

// BoolConst names a fresh Bool constant.
func BoolConst(name string) Const[Bool] { return NewConst(name, Bool{}) }

// BoolLit wraps the `true`/`false` nullary constants.
func BoolLit(v bool) Bool {
	sym := "false"
	if v {
		sym = "true"
	}
	return Bool{term: ast.IdentTerm{Ident: ast.Unsorted(ast.SimpleIdent(sym))}}
}

func app(op string, args ...ast.Term) ast.Term {
	return ast.AppTerm{Func: ast.Unsorted(ast.SimpleIdent(op)), Args: args}
}

func (b Bool) And(other Bool) Bool { return Bool{term: app("and", b.term, other.term)} }
func (b Bool) Or(other Bool) Bool  { return Bool{term: app("or", b.term, other.term)} }
func (b Bool) Xor(other Bool) Bool { return Bool{term: app("xor", b.term, other.term)} }
func (b Bool) Not() Bool           { return Bool{term: app("not", b.term)} }
func (b Bool) Implies(other Bool) Bool {
	return Bool{term: app("=>", b.term, other.term)}
}

// Ite is `(ite cond then else)`, generic over any theory wrapper.
func Ite[T Typed](cond Bool, then, els T) T {
	return withTerm(then, app("ite", cond.term, then.Term(), els.Term()))
}

// Eq and Distinct are defined once as free functions (rather than methods)
// because SMT-LIB's `=`/`distinct` apply across every sort uniformly.
func Eq[T Typed](a, b T) Bool        { return Bool{term: app("=", a.Term(), b.Term())} }
func Distinct[T Typed](terms ...T) Bool {
	args := make([]ast.Term, len(terms))
	for i, t := range terms {
		args[i] = t.Term()
	}
	return Bool{term: app("distinct", args...)}
}

// AndAll / OrAll fold a variadic list; SMT-LIB's and/or accept any arity.
func AndAll(terms ...Bool) Bool {
	args := make([]ast.Term, len(terms))
	for i, t := range terms {
		args[i] = t.term
	}
	return Bool{term: app("and", args...)}
}

func OrAll(terms ...Bool) Bool {
	args := make([]ast.Term, len(terms))
	for i, t := range terms {
		args[i] = t.term
	}
	return Bool{term: app("or", args...)}
}
