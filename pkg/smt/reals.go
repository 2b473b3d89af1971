package smt

import (
	"strings"

	"github.com/shopspring/decimal"

	"go.smtlib.dev/smtlib/pkg/ast"
)

// Real is the Reals theory wrapper (spec.md §4.6). Decimal literals are
// held as shopspring/decimal values so construction from a float or string
// never loses precision to binary floating point before it reaches the
// solver.
type Real struct{ term ast.Term }

func (r Real) Term() ast.Term   { return r.term }
func (r Real) SortOf() ast.Sort { return ast.BareSort(ast.SimpleIdent("Real")) }

func RealConst(name string) Const[Real] { return NewConst(name, Real{}) }

// FromFloat builds a Real from a float64 via decimal.NewFromFloat, avoiding
// the binary-floating-point surface form a raw strconv.FormatFloat would
// otherwise leak into the emitted decimal lexeme.
func FromFloat(f float64) Real { return RealLit(decimal.NewFromFloat(f)) }

// FromDecimalString parses s (e.g. "3.14") via decimal.NewFromString and
// wraps the result as a Real literal.
func FromDecimalString(s string) (Real, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Real{}, err
	}
	return RealLit(d), nil
}

// RealLit wraps a decimal literal. SMT-LIB decimals require at least one
// digit after the point, which decimal.String() does not always provide
// (e.g. an integral value prints without one), so RealLit pads it; and,
// since decimal lexemes are always non-negative, a negative d is rendered
// as `(- |d|)`.
func RealLit(d decimal.Decimal) Real {
	if d.Sign() < 0 {
		lit := ast.ConstTerm{Value: ast.SpecConstant{Kind: decimalKind, Text: renderDecimal(d.Neg())}}
		return Real{term: app("-", lit)}
	}
	return Real{term: ast.ConstTerm{Value: ast.SpecConstant{Kind: decimalKind, Text: renderDecimal(d)}}}
}

func renderDecimal(d decimal.Decimal) string {
	s := d.String()
	if strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}

func (a Real) Add(b Real) Real { return Real{term: app("+", a.term, b.term)} }
func (a Real) Sub(b Real) Real { return Real{term: app("-", a.term, b.term)} }
func (a Real) Mul(b Real) Real { return Real{term: app("*", a.term, b.term)} }
func (a Real) Div(b Real) Real { return Real{term: app("/", a.term, b.term)} }
func (a Real) Neg() Real       { return Real{term: app("-", a.term)} }

func (a Real) Lt(b Real) Bool { return Bool{term: app("<", a.term, b.term)} }
func (a Real) Le(b Real) Bool { return Bool{term: app("<=", a.term, b.term)} }
func (a Real) Gt(b Real) Bool { return Bool{term: app(">", a.term, b.term)} }
func (a Real) Ge(b Real) Bool { return Bool{term: app(">=", a.term, b.term)} }
