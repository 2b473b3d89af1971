package smt

import "go.smtlib.dev/smtlib/pkg/lexicon"

// Kind aliases used when constructing SpecConstant literals directly,
// avoiding a lexicon import in every theory file.
const (
	numeralKind      = lexicon.KindNumeral
	decimalKind      = lexicon.KindDecimal
	hexadecimalKind  = lexicon.KindHexadecimal
	binaryKind       = lexicon.KindBinary
	fieldElementKind = lexicon.KindFieldElement
)
