package smt

import "go.smtlib.dev/smtlib/pkg/ast"

// BitVec is the FixedSizeBitVectors theory wrapper (spec.md §4.6). Go has
// no const generics, so unlike the Rust original's `BitVec<N>` the width
// is a runtime field; operations that require matching widths are the
// caller's responsibility to get right, same as the underlying solver
// would reject a mismatch itself.
type BitVec struct {
	term  ast.Term
	width int
}

func (b BitVec) Term() ast.Term { return b.term }

func (b BitVec) SortOf() ast.Sort {
	return ast.Sort{Ident: ast.Identifier{
		Symbol:  "BitVec",
		Indices: []ast.Index{{Numeral: itoaInt64(int64(b.width))}},
	}}
}

// Width reports the bitvector's declared width in bits.
func (b BitVec) Width() int { return b.width }

// BitVecConst names a fresh BitVec constant of the given width.
func BitVecConst(name string, width int) Const[BitVec] {
	return NewConst(name, BitVec{width: width})
}

// BitVecLit wraps a `#xHH...` hexadecimal literal whose bit width is
// 4*len(hex); for widths not a multiple of 4, use BitVecLitBinary.
func BitVecLit(hex string, width int) BitVec {
	return BitVec{term: ast.ConstTerm{Value: ast.SpecConstant{Kind: hexadecimalKind, Text: "#x" + hex}}, width: width}
}

// BitVecLitBinary wraps a `#bBBB...` binary literal; len(bits) must equal
// width.
func BitVecLitBinary(bits string, width int) BitVec {
	return BitVec{term: ast.ConstTerm{Value: ast.SpecConstant{Kind: binaryKind, Text: "#b" + bits}}, width: width}
}

func (a BitVec) binOp(op string, b BitVec) BitVec {
	return BitVec{term: app(op, a.term, b.term), width: a.width}
}

func (a BitVec) And(b BitVec) BitVec { return a.binOp("bvand", b) }
func (a BitVec) Or(b BitVec) BitVec  { return a.binOp("bvor", b) }
func (a BitVec) Xor(b BitVec) BitVec { return a.binOp("bvxor", b) }
func (a BitVec) Add(b BitVec) BitVec { return a.binOp("bvadd", b) }
func (a BitVec) Mul(b BitVec) BitVec { return a.binOp("bvmul", b) }
func (a BitVec) Shl(b BitVec) BitVec  { return a.binOp("bvshl", b) }
func (a BitVec) Lshr(b BitVec) BitVec { return a.binOp("bvlshr", b) }
func (a BitVec) Ashr(b BitVec) BitVec { return a.binOp("bvashr", b) }

func (a BitVec) Not() BitVec { return BitVec{term: app("bvnot", a.term), width: a.width} }
func (a BitVec) Neg() BitVec { return BitVec{term: app("bvneg", a.term), width: a.width} }

// Concat produces a (a.width+b.width)-bit vector, the result of
// SMT-LIB's `concat`.
func (a BitVec) Concat(b BitVec) BitVec {
	return BitVec{term: app("concat", a.term, b.term), width: a.width + b.width}
}

// Extract slices bits [hi:lo] inclusive into a (hi-lo+1)-bit result, via the
// indexed `(_ extract hi lo)` function symbol.
func (a BitVec) Extract(hi, lo int) BitVec {
	extractOp := ast.Unsorted(ast.Identifier{
		Symbol: "extract",
		Indices: []ast.Index{
			{Numeral: itoaInt64(int64(hi))},
			{Numeral: itoaInt64(int64(lo))},
		},
	})
	return BitVec{term: ast.AppTerm{Func: extractOp, Args: []ast.Term{a.term}}, width: hi - lo + 1}
}

func (a BitVec) UnsignedLt(b BitVec) Bool { return Bool{term: app("bvult", a.term, b.term)} }
func (a BitVec) UnsignedLe(b BitVec) Bool { return Bool{term: app("bvule", a.term, b.term)} }
func (a BitVec) SignedLt(b BitVec) Bool   { return Bool{term: app("bvslt", a.term, b.term)} }
func (a BitVec) SignedLe(b BitVec) Bool   { return Bool{term: app("bvsle", a.term, b.term)} }
