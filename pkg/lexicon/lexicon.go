// Package lexicon implements the token classification rules for the SMT-LIB
// v2.6 command/response grammar.
//
// This section turns a raw byte stream into a sequence of semantic lexemes
// (Numeral, Decimal, Hexadecimal, Binary, FieldElement, Symbol, Keyword,
// Reserved, String), each one keeping its exact surface form so that a
// parsed token can always be rendered back to the bytes it came from.
package lexicon

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Kind identifies the semantic class of a Token.
type Kind int

const (
	KindInvalid Kind = iota
	KindLParen
	KindRParen
	KindNumeral
	KindDecimal
	KindHexadecimal
	KindBinary
	KindFieldElement
	KindString
	KindSymbol
	KindKeyword
	KindReserved
	KindEOF
)

func (k Kind) String() string {
	switch k {
	case KindLParen:
		return "LParen"
	case KindRParen:
		return "RParen"
	case KindNumeral:
		return "Numeral"
	case KindDecimal:
		return "Decimal"
	case KindHexadecimal:
		return "Hexadecimal"
	case KindBinary:
		return "Binary"
	case KindFieldElement:
		return "FieldElement"
	case KindString:
		return "String"
	case KindSymbol:
		return "Symbol"
	case KindKeyword:
		return "Keyword"
	case KindReserved:
		return "Reserved"
	case KindEOF:
		return "EOF"
	default:
		return "Invalid"
	}
}

// Span marks the byte offsets of a Token within its source input, used to
// produce diagnostics that point back at the offending text.
type Span struct {
	Start int
	End   int
}

// Token is a single semantic lexeme: its Kind plus its exact surface text
// (the "Text" field preserves the literal form, including quoting/escapes,
// so that re-rendering a parsed value round-trips byte for byte).
type Token struct {
	Kind Kind
	Text string
	Span Span
}

// reservedWords is the closed set of SMT-LIB reserved words; a Symbol whose
// text exactly matches one of these is reclassified as Reserved rather than
// Symbol, per spec.md §4.1.
var reservedWords = map[string]bool{
	"par": true, "NUMERAL": true, "DECIMAL": true, "STRING": true,
	"_": true, "!": true, "as": true, "let": true, "forall": true,
	"exists": true, "match": true,
}

// Character classes, modeled as bitsets over the 128 ASCII code points —
// grounded on the same technique Tangerg-lynx/pkg/mime uses to mark valid
// MIME token characters: build the class once in init(), query it with a
// single Test() call per byte instead of a chain of rune comparisons.
var (
	symbolStartClass bitset.BitSet
	symbolCharClass   bitset.BitSet
)

const symbolSpecialChars = "+-/*=%?!.$_~&^<>@"

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		symbolStartClass.Set(uint(c))
		symbolCharClass.Set(uint(c))
	}
	for c := byte('A'); c <= 'Z'; c++ {
		symbolStartClass.Set(uint(c))
		symbolCharClass.Set(uint(c))
	}
	for _, c := range []byte(symbolSpecialChars) {
		symbolStartClass.Set(uint(c))
		symbolCharClass.Set(uint(c))
	}
	for c := byte('0'); c <= '9'; c++ {
		symbolCharClass.Set(uint(c)) // digits may continue a symbol, not start one
	}
}

func isSymbolStart(b byte) bool { return b < 128 && symbolStartClass.Test(uint(b)) }
func isSymbolChar(b byte) bool  { return b < 128 && symbolCharClass.Test(uint(b)) }
func isDigit(b byte) bool       { return b >= '0' && b <= '9' }
func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// Error is the LexError taxonomy entry from spec.md §7: a malformed token
// carrying the offending span.
type Error struct {
	Reason string
	Span   Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("lex error at [%d:%d]: %s", e.Span.Start, e.Span.End, e.Reason)
}

func errAt(start, end int, reason string, args ...any) *Error {
	return &Error{Reason: fmt.Sprintf(reason, args...), Span: Span{Start: start, End: end}}
}

// Lex tokenizes the entirety of src, returning the token sequence terminated
// by a KindEOF token, or the first Error encountered.
func Lex(src []byte) ([]Token, error) {
	l := &lexer{src: src}
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens, nil
		}
	}
}

type lexer struct {
	src []byte
	pos int
}

func (l *lexer) peekByte() (byte, bool) {
	if l.pos >= len(l.src) {
		return 0, false
	}
	return l.src[l.pos], true
}

func (l *lexer) byteAt(offset int) (byte, bool) {
	i := l.pos + offset
	if i >= len(l.src) {
		return 0, false
	}
	return l.src[i], true
}

// skipTrivia discards whitespace and ';'-to-end-of-line comments.
func (l *lexer) skipTrivia() {
	for {
		b, ok := l.peekByte()
		if !ok {
			return
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			l.pos++
		case ';':
			for {
				b, ok := l.peekByte()
				if !ok || b == '\n' {
					break
				}
				l.pos++
			}
		default:
			return
		}
	}
}

func (l *lexer) next() (Token, error) {
	l.skipTrivia()

	start := l.pos
	b, ok := l.peekByte()
	if !ok {
		return Token{Kind: KindEOF, Span: Span{Start: start, End: start}}, nil
	}

	switch {
	case b == '(':
		l.pos++
		return Token{Kind: KindLParen, Text: "(", Span: Span{start, l.pos}}, nil
	case b == ')':
		l.pos++
		return Token{Kind: KindRParen, Text: ")", Span: Span{start, l.pos}}, nil
	case b == '"':
		return l.lexString(start)
	case b == '#':
		return l.lexHexOrBinary(start)
	case b == ':':
		return l.lexKeyword(start)
	case b == '|':
		return l.lexQuotedSymbol(start)
	case isDigit(b):
		return l.lexNumberOrFieldElement(start)
	case isSymbolStart(b):
		return l.lexSymbolOrReserved(start)
	default:
		l.pos++
		return Token{}, errAt(start, l.pos, "unknown character %q", b)
	}
}

func (l *lexer) lexString(start int) (Token, error) {
	l.pos++ // consume opening quote
	for {
		b, ok := l.peekByte()
		if !ok {
			return Token{}, errAt(start, l.pos, "unterminated string literal")
		}
		if b == '"' {
			// a doubled quote ("") is an escaped literal quote, not the terminator
			if next, ok := l.byteAt(1); ok && next == '"' {
				l.pos += 2
				continue
			}
			l.pos++
			return Token{Kind: KindString, Text: string(l.src[start:l.pos]), Span: Span{start, l.pos}}, nil
		}
		l.pos++
	}
}

func (l *lexer) lexHexOrBinary(start int) (Token, error) {
	l.pos++ // consume '#'
	marker, ok := l.peekByte()
	if !ok {
		return Token{}, errAt(start, l.pos, "expected 'x' or 'b' after '#'")
	}
	switch marker {
	case 'x':
		l.pos++
		digitsStart := l.pos
		for {
			b, ok := l.peekByte()
			if !ok || !isHexDigit(b) {
				break
			}
			l.pos++
		}
		if l.pos == digitsStart {
			return Token{}, errAt(start, l.pos, "bad hex digit: expected at least one hex digit after '#x'")
		}
		return Token{Kind: KindHexadecimal, Text: string(l.src[start:l.pos]), Span: Span{start, l.pos}}, nil
	case 'b':
		l.pos++
		digitsStart := l.pos
		for {
			b, ok := l.peekByte()
			if !ok || (b != '0' && b != '1') {
				break
			}
			l.pos++
		}
		if l.pos == digitsStart {
			return Token{}, errAt(start, l.pos, "bad binary digit: expected at least one binary digit after '#b'")
		}
		return Token{Kind: KindBinary, Text: string(l.src[start:l.pos]), Span: Span{start, l.pos}}, nil
	default:
		return Token{}, errAt(start, l.pos+1, "bad hex digit: unexpected marker %q after '#'", marker)
	}
}

func (l *lexer) lexKeyword(start int) (Token, error) {
	l.pos++ // consume ':'
	if b, ok := l.peekByte(); !ok || !isSymbolStart(b) {
		return Token{}, errAt(start, l.pos, "malformed keyword: ':' must be followed by a simple symbol")
	}
	l.pos++
	for {
		b, ok := l.peekByte()
		if !ok || !isSymbolChar(b) {
			break
		}
		l.pos++
	}
	return Token{Kind: KindKeyword, Text: string(l.src[start:l.pos]), Span: Span{start, l.pos}}, nil
}

func (l *lexer) lexQuotedSymbol(start int) (Token, error) {
	l.pos++ // consume opening '|'
	for {
		b, ok := l.peekByte()
		if !ok {
			return Token{}, errAt(start, l.pos, "unterminated quoted symbol")
		}
		if b == '\\' {
			return Token{}, errAt(start, l.pos, "quoted symbol may not contain '\\'")
		}
		if b == '|' {
			l.pos++
			return Token{Kind: KindSymbol, Text: string(l.src[start:l.pos]), Span: Span{start, l.pos}}, nil
		}
		l.pos++
	}
}

// lexNumberOrFieldElement handles the token kinds that begin with a digit:
// Numeral and Decimal. A FieldElement literal ("ff5") starts with the
// letter 'f', not a digit, so it is classified in lexSymbolOrReserved
// instead.
func (l *lexer) lexNumberOrFieldElement(start int) (Token, error) {
	// "0" is a complete numeral by itself; a non-zero digit is followed by
	// more digits.
	first := l.src[l.pos]
	l.pos++
	if first != '0' {
		for {
			b, ok := l.peekByte()
			if !ok || !isDigit(b) {
				break
			}
			l.pos++
		}
	}

	// numeral '.' digits+ forms a Decimal
	if b, ok := l.peekByte(); ok && b == '.' {
		if next, ok := l.byteAt(1); ok && isDigit(next) {
			l.pos++ // consume '.'
			for {
				b, ok := l.peekByte()
				if !ok || !isDigit(b) {
					break
				}
				l.pos++
			}
			return Token{Kind: KindDecimal, Text: string(l.src[start:l.pos]), Span: Span{start, l.pos}}, nil
		}
	}

	return Token{Kind: KindNumeral, Text: string(l.src[start:l.pos]), Span: Span{start, l.pos}}, nil
}

func (l *lexer) lexSymbolOrReserved(start int) (Token, error) {
	l.pos++
	for {
		b, ok := l.peekByte()
		if !ok || !isSymbolChar(b) {
			break
		}
		l.pos++
	}
	text := string(l.src[start:l.pos])

	if isFieldElementLiteral(text) {
		return Token{Kind: KindFieldElement, Text: text, Span: Span{start, l.pos}}, nil
	}
	if reservedWords[text] {
		return Token{Kind: KindReserved, Text: text, Span: Span{start, l.pos}}, nil
	}
	return Token{Kind: KindSymbol, Text: text, Span: Span{start, l.pos}}, nil
}

// isFieldElementLiteral reports whether text matches `ff[0-9]+`, the finite
// field extension's literal form (spec.md §4.1).
func isFieldElementLiteral(text string) bool {
	if len(text) < 3 || text[0] != 'f' || text[1] != 'f' {
		return false
	}
	for i := 2; i < len(text); i++ {
		if !isDigit(text[i]) {
			return false
		}
	}
	return true
}
