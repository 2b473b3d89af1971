package smt

import "go.smtlib.dev/smtlib/pkg/ast"

// Int is the Ints theory wrapper (spec.md §4.6).
type Int struct{ term ast.Term }

func (i Int) Term() ast.Term   { return i.term }
func (i Int) SortOf() ast.Sort { return ast.BareSort(ast.SimpleIdent("Int")) }

func IntConst(name string) Const[Int] { return NewConst(name, Int{}) }

// IntLit wraps a numeral literal. SMT-LIB numerals are always non-negative
// digit sequences, so a negative n is rendered as `(- |n|)`.
func IntLit(n int64) Int {
	neg := n < 0
	mag := n
	if neg {
		mag = -n
	}
	lit := ast.Term(ast.ConstTerm{Value: ast.SpecConstant{Kind: numeralKind, Text: itoaInt64(mag)}})
	if neg {
		lit = app("-", lit)
	}
	return Int{term: lit}
}

func (a Int) Add(b Int) Int { return Int{term: app("+", a.term, b.term)} }
func (a Int) Sub(b Int) Int { return Int{term: app("-", a.term, b.term)} }
func (a Int) Mul(b Int) Int { return Int{term: app("*", a.term, b.term)} }
func (a Int) Div(b Int) Int { return Int{term: app("div", a.term, b.term)} }
func (a Int) Mod(b Int) Int { return Int{term: app("mod", a.term, b.term)} }
func (a Int) Neg() Int      { return Int{term: app("-", a.term)} }
func (a Int) Abs() Int      { return Int{term: app("abs", a.term)} }

func (a Int) Lt(b Int) Bool  { return Bool{term: app("<", a.term, b.term)} }
func (a Int) Le(b Int) Bool  { return Bool{term: app("<=", a.term, b.term)} }
func (a Int) Gt(b Int) Bool  { return Bool{term: app(">", a.term, b.term)} }
func (a Int) Ge(b Int) Bool  { return Bool{term: app(">=", a.term, b.term)} }

func itoaInt64(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [24]byte
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
