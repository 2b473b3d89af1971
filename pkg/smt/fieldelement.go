package smt

import (
	"math/big"

	"go.smtlib.dev/smtlib/pkg/ast"
)

// FieldElement is the FiniteFields theory wrapper (spec.md §4.6). The
// modulus is carried on the Go value so operations can render the
// `(as ffN F)` sort-qualified literal form the Resolved Open Question in
// this module's design notes settles on for emitted literals; no pack
// library offers arbitrary-precision integers, so this is one of the few
// places this module reaches into the standard library.
type FieldElement struct {
	term    ast.Term
	modulus *big.Int
}

func (f FieldElement) Term() ast.Term { return f.term }

func (f FieldElement) SortOf() ast.Sort {
	if f.modulus == nil {
		return ast.BareSort(ast.SimpleIdent("F"))
	}
	return ast.Sort{
		Ident: ast.Identifier{Symbol: "FiniteField", Indices: []ast.Index{{Numeral: f.modulus.String()}}},
	}
}

// FieldElementConst names a fresh FieldElement constant over modulus p.
func FieldElementConst(name string, p *big.Int) Const[FieldElement] {
	return NewConst(name, FieldElement{modulus: p})
}

// FieldElementLit wraps a `ffN` literal sort-qualified as `(as ffN F)`,
// where F is whatever sort name the surrounding session bound via
// Solver.SetFieldOrder. The identifier is built via SortedLiteral, not
// Sorted: `ffN` is the theory's built-in literal syntax, not a name a
// caller declared, so Solver.Assert's auto-declare walk (ast.AllConsts)
// must never turn it into a free `(declare-const ffN F)`.
func FieldElementLit(value *big.Int, p *big.Int) FieldElement {
	reduced := new(big.Int).Mod(value, p)
	name := "ff" + reduced.String()
	sort := ast.BareSort(ast.SimpleIdent("F"))
	id := ast.SortedLiteral(ast.SimpleIdent(name), sort)
	return FieldElement{term: ast.IdentTerm{Ident: id}, modulus: p}
}

func (a FieldElement) Add(b FieldElement) FieldElement {
	return FieldElement{term: app("ff.add", a.term, b.term), modulus: a.modulus}
}

func (a FieldElement) Mul(b FieldElement) FieldElement {
	return FieldElement{term: app("ff.mul", a.term, b.term), modulus: a.modulus}
}

func (a FieldElement) Neg() FieldElement {
	return FieldElement{term: app("ff.neg", a.term), modulus: a.modulus}
}
