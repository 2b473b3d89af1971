package ast

import (
	"fmt"

	"go.smtlib.dev/smtlib/pkg/lexicon"
)

// ParseError is the ParseError taxonomy entry from spec.md §7: a grammar
// violation carrying the span where it was detected.
type ParseError struct {
	Reason string
	Span   lexicon.Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at [%d:%d]: %s", e.Span.Start, e.Span.End, e.Reason)
}

func newParseError(span lexicon.Span, reason string, args ...any) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(reason, args...), Span: span}
}

// Parser is a stateful cursor over a tokenized input (spec.md §4.2). It
// exposes only forward-looking, mostly non-consuming inspection (Peek/Nth),
// a consuming Expect, structural-token helpers, and checkpoint/restore for
// backtrackable alternative selection — the primitives every recursive
// descent parser in this package is built from.
type Parser struct {
	tokens []lexicon.Token
	pos    int
}

// NewParser lexes src and returns a Parser positioned at the first token.
func NewParser(src []byte) (*Parser, error) {
	tokens, err := lexicon.Lex(src)
	if err != nil {
		return nil, err
	}
	return &Parser{tokens: tokens}, nil
}

// Checkpoint is an opaque cursor position saved by Mark and restored by
// Reset, used to implement bounded-lookahead alternative selection.
type Checkpoint int

func (p *Parser) Mark() Checkpoint   { return Checkpoint(p.pos) }
func (p *Parser) Reset(c Checkpoint) { p.pos = int(c) }

// Nth inspects the token kind at lookahead offset k (0 = the next token to
// be consumed) without advancing the cursor.
func (p *Parser) Nth(k int) lexicon.Kind {
	i := p.pos + k
	if i < 0 || i >= len(p.tokens) {
		return lexicon.KindEOF
	}
	return p.tokens[i].Kind
}

// NthToken is Nth's counterpart that returns the full token, used when a
// parser needs the lookahead token's text (e.g. to inspect a command name).
func (p *Parser) NthToken(k int) lexicon.Token {
	i := p.pos + k
	if i < 0 || i >= len(p.tokens) {
		return lexicon.Token{Kind: lexicon.KindEOF}
	}
	return p.tokens[i]
}

// Peek is Nth(0).
func (p *Parser) Peek() lexicon.Kind { return p.Nth(0) }

func (p *Parser) currentSpan() lexicon.Span {
	return p.NthToken(0).Span
}

// Expect consumes the next token if its Kind matches kind, returning the
// consumed token; otherwise it fails with UnexpectedToken.
func (p *Parser) Expect(kind lexicon.Kind) (lexicon.Token, error) {
	tok := p.NthToken(0)
	if tok.Kind != kind {
		return lexicon.Token{}, newParseError(tok.Span,
			"unexpected token: expected %s, got %s %q", kind, tok.Kind, tok.Text)
	}
	p.pos++
	return tok, nil
}

// ExpectEOF fails unless the cursor has reached the end of the input.
func (p *Parser) ExpectEOF() error {
	if p.Peek() != lexicon.KindEOF {
		tok := p.NthToken(0)
		return newParseError(tok.Span, "unexpected trailing token %s %q", tok.Kind, tok.Text)
	}
	return nil
}

// OpenParen / CloseParen consume the structural '(' / ')' tokens.
func (p *Parser) OpenParen() error {
	tok := p.NthToken(0)
	if tok.Kind != lexicon.KindLParen {
		return newParseError(tok.Span, "unexpected token: expected '(', got %s %q", tok.Kind, tok.Text)
	}
	p.pos++
	return nil
}

func (p *Parser) CloseParen() error {
	tok := p.NthToken(0)
	if tok.Kind != lexicon.KindRParen {
		return newParseError(tok.Span, "unexpected token: expected ')', got %s %q", tok.Kind, tok.Text)
	}
	p.pos++
	return nil
}

// IsStartOfList reports whether the upcoming token opens a parenthesized
// form — the single-token lookahead almost every sum-type dispatcher in
// this package needs before deciding between an atomic and a compound
// production.
func (p *Parser) IsStartOfList() bool { return p.Peek() == lexicon.KindLParen }

// AtReservedWord reports whether the upcoming token is the Reserved word
// text, used by command/term dispatchers that branch on a keyword at a
// fixed lookahead offset.
func (p *Parser) AtReservedWord(offset int, text string) bool {
	tok := p.NthToken(offset)
	return tok.Kind == lexicon.KindReserved && tok.Text == text
}

// AtSymbol reports whether the upcoming token is the Symbol text, used for
// command-name dispatch (command names lex as ordinary symbols).
func (p *Parser) AtSymbol(offset int, text string) bool {
	tok := p.NthToken(offset)
	return tok.Kind == lexicon.KindSymbol && tok.Text == text
}
