// Package smt is the typed term layer and Solver façade sitting atop
// pkg/ast, pkg/driver and pkg/backend: per-theory wrapper types that lower
// to AST application nodes, automatic constant declaration, and a Solver
// that lifts a program of typed operations into check-sat/get-model calls.
package smt

import (
	"sync/atomic"

	"go.smtlib.dev/smtlib/pkg/ast"
)

// Typed is implemented by every theory wrapper (Bool, Int, Real, BitVec,
// FieldElement, Dynamic): it exposes the underlying AST term and the sort
// that term is understood to inhabit.
type Typed interface {
	Term() ast.Term
	SortOf() ast.Sort
}

// Const wraps a named, sort-annotated qualified identifier together with
// its theory-typed value, so the Solver can extract a declare-const from
// it without the caller re-stating the sort (spec.md §4.6).
type Const[T Typed] struct {
	name  string
	value T
}

// NewConst builds Const[T] from a bare name and the zero-valued wrapper
// whose sort determines the declaration; name is wrapped in `|...|` when
// rendered only if it is not a valid simple symbol.
func NewConst[T Typed](name string, zero T) Const[T] {
	sort := zero.SortOf()
	id := ast.Sorted(ast.SimpleIdent(name), sort)
	term := ast.IdentTerm{Ident: id}
	return Const[T]{name: name, value: withTerm(zero, term)}
}

func (c Const[T]) Name() string   { return c.name }
func (c Const[T]) Value() T       { return c.value }
func (c Const[T]) Term() ast.Term { return c.value.Term() }
func (c Const[T]) SortOf() ast.Sort { return c.value.SortOf() }

// Ident is the Sorted qualified identifier a Const declares under,
// exposed so the Solver can walk an asserted term's identifiers.
func (c Const[T]) Ident() ast.QualIdentifier {
	return ast.Sorted(ast.SimpleIdent(c.name), c.value.SortOf())
}

// withTerm rebuilds a wrapper of zero's type around a specific term, with
// one type-switch case per wrapper that carries over its extra fields
// (BitVec width, FieldElement modulus). It exists because
// Go generics give no way to construct an arbitrary T from its sort alone.
func withTerm[T Typed](zero T, term ast.Term) T {
	switch z := any(zero).(type) {
	case Bool:
		return any(Bool{term: term}).(T)
	case Int:
		return any(Int{term: term}).(T)
	case Real:
		return any(Real{term: term}).(T)
	case Dynamic:
		return any(Dynamic{term: term}).(T)
	case BitVec:
		return any(BitVec{term: term, width: z.width}).(T)
	case FieldElement:
		return any(FieldElement{term: term, modulus: z.modulus}).(T)
	default:
		return zero
	}
}

// Dynamic is the untyped passthrough wrapper (spec.md §4.6): it carries an
// arbitrary term with no sort-checking at the Go type level.
type Dynamic struct{ term ast.Term }

func NewDynamic(term ast.Term) Dynamic { return Dynamic{term: term} }
func (d Dynamic) Term() ast.Term       { return d.term }
func (d Dynamic) SortOf() ast.Sort     { return ast.BareSort(ast.SimpleIdent("dynamic")) }

// labelCounter is the process-wide monotonic counter spec.md §4.6 backs
// `labeled` with; only its uniqueness is guaranteed, not its ordering
// across goroutines.
var labelCounter uint64

// Label names a sub-expression via a `(! term :named <fresh>)` annotation
// and retains the generated name so model outputs can be correlated back
// to it.
type Label[T Typed] struct {
	name  string
	value T
}

// NewLabel wraps term's underlying AST in a fresh `:named` annotation.
func NewLabel[T Typed](term T) Label[T] {
	n := atomic.AddUint64(&labelCounter, 1)
	name := labelName(n)
	annotated := ast.AnnotationTerm{
		Term: term.Term(),
		Attrs: []ast.Attribute{{
			Keyword: ":named",
			Value:   symbolAttr(name),
		}},
	}
	return Label[T]{name: name, value: withTerm(term, annotated)}
}

func labelName(n uint64) string {
	return "smtlib!label!" + itoaUint(n)
}

func itoaUint(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func symbolAttr(s string) *ast.AttributeValue {
	v := ast.SymbolAttrValue(s)
	return &v
}

func (l Label[T]) Name() string   { return l.name }
func (l Label[T]) Value() T       { return l.value }
func (l Label[T]) Term() ast.Term { return l.value.Term() }
func (l Label[T]) SortOf() ast.Sort { return l.value.SortOf() }
