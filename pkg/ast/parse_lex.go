package ast

import "go.smtlib.dev/smtlib/pkg/lexicon"

// literalKinds are the Kind values a SpecConstant may wrap.
var literalKinds = map[lexicon.Kind]bool{
	lexicon.KindNumeral:      true,
	lexicon.KindDecimal:      true,
	lexicon.KindHexadecimal:  true,
	lexicon.KindBinary:       true,
	lexicon.KindFieldElement: true,
	lexicon.KindString:       true,
}

// IsStartOfSpecConstant is a cheap, non-consuming lookahead (spec.md §4.2).
func IsStartOfSpecConstant(p *Parser, offset int) bool {
	return literalKinds[p.Nth(offset)]
}

// ParseSpecConstant consumes one literal token.
func ParseSpecConstant(p *Parser) (SpecConstant, error) {
	tok := p.NthToken(0)
	if !literalKinds[tok.Kind] {
		return SpecConstant{}, newParseError(tok.Span, "expected a literal constant, got %s %q", tok.Kind, tok.Text)
	}
	p.pos++
	return SpecConstant{Kind: tok.Kind, Text: tok.Text}, nil
}

// parseSymbolText consumes a Symbol token and returns its text with any
// `|...|` quoting stripped.
func parseSymbolText(p *Parser) (string, error) {
	tok, err := p.Expect(lexicon.KindSymbol)
	if err != nil {
		return "", err
	}
	return unquoteSymbol(tok.Text), nil
}

func unquoteSymbol(text string) string {
	if len(text) >= 2 && text[0] == '|' && text[len(text)-1] == '|' {
		return text[1 : len(text)-1]
	}
	return text
}

func parseKeywordText(p *Parser) (string, error) {
	tok, err := p.Expect(lexicon.KindKeyword)
	if err != nil {
		return "", err
	}
	return tok.Text, nil
}

// IsStartOfIdentifier is a cheap, non-consuming lookahead: an identifier
// starts either with a bare Symbol, or with `(_ symbol index...)`.
func IsStartOfIdentifier(p *Parser, offset int) bool {
	if p.Nth(offset) == lexicon.KindSymbol {
		return true
	}
	return p.Nth(offset) == lexicon.KindLParen && p.AtReservedWord(offset+1, "_")
}

// ParseIdentifier parses either a Simple or an Indexed identifier.
func ParseIdentifier(p *Parser) (Identifier, error) {
	if p.Peek() == lexicon.KindSymbol {
		sym, err := parseSymbolText(p)
		if err != nil {
			return Identifier{}, err
		}
		return SimpleIdent(sym), nil
	}

	if err := p.OpenParen(); err != nil {
		return Identifier{}, err
	}
	if _, err := p.Expect(lexicon.KindReserved); err != nil {
		return Identifier{}, err
	}
	sym, err := parseSymbolText(p)
	if err != nil {
		return Identifier{}, err
	}
	var indices []Index
	for !p.IsCloseParenNext() {
		idx, err := parseIndex(p)
		if err != nil {
			return Identifier{}, err
		}
		indices = append(indices, idx)
	}
	if len(indices) == 0 {
		tok := p.NthToken(0)
		return Identifier{}, newParseError(tok.Span, "indexed identifier requires at least one index")
	}
	if err := p.CloseParen(); err != nil {
		return Identifier{}, err
	}
	return Identifier{Symbol: sym, Indices: indices}, nil
}

// IsCloseParenNext is a small convenience used by Kleene-style loops
// throughout this package: keep parsing elements until ')' is next.
func (p *Parser) IsCloseParenNext() bool { return p.Peek() == lexicon.KindRParen }

func parseIndex(p *Parser) (Index, error) {
	if p.Peek() == lexicon.KindNumeral {
		tok, _ := p.Expect(lexicon.KindNumeral)
		return Index{Numeral: tok.Text}, nil
	}
	sym, err := parseSymbolText(p)
	if err != nil {
		tok := p.NthToken(0)
		return Index{}, newParseError(tok.Span, "expected a numeral or symbol index")
	}
	return Index{Symbol: sym, IsSymbol: true}, nil
}

// IsStartOfQualIdentifier is a cheap, non-consuming lookahead.
func IsStartOfQualIdentifier(p *Parser, offset int) bool {
	if p.Nth(offset) == lexicon.KindLParen && p.AtReservedWord(offset+1, "as") {
		return true
	}
	return IsStartOfIdentifier(p, offset)
}

// ParseQualIdentifier parses either a bare identifier or `(as identifier sort)`.
func ParseQualIdentifier(p *Parser) (QualIdentifier, error) {
	if p.Peek() == lexicon.KindLParen && p.AtReservedWord(1, "as") {
		if err := p.OpenParen(); err != nil {
			return QualIdentifier{}, err
		}
		if _, err := p.Expect(lexicon.KindReserved); err != nil {
			return QualIdentifier{}, err
		}
		id, err := ParseIdentifier(p)
		if err != nil {
			return QualIdentifier{}, err
		}
		sort, err := ParseSort(p)
		if err != nil {
			return QualIdentifier{}, err
		}
		if err := p.CloseParen(); err != nil {
			return QualIdentifier{}, err
		}
		return Sorted(id, sort), nil
	}

	id, err := ParseIdentifier(p)
	if err != nil {
		return QualIdentifier{}, err
	}
	return Unsorted(id), nil
}

// IsStartOfSort is a cheap, non-consuming lookahead; a sort always starts
// exactly like an identifier.
func IsStartOfSort(p *Parser, offset int) bool { return IsStartOfIdentifier(p, offset) }

// ParseSort parses either a bare identifier sort or a parametric
// `(identifier sort...)` application.
func ParseSort(p *Parser) (Sort, error) {
	// Disambiguate `(_ ...)` (an indexed identifier sort, e.g. `(_ BitVec 8)`)
	// from `(identifier sort...)` (a parametric sort application): only the
	// latter has a plain identifier immediately after '('.
	if p.Peek() == lexicon.KindLParen && !p.AtReservedWord(1, "_") {
		if err := p.OpenParen(); err != nil {
			return Sort{}, err
		}
		id, err := ParseIdentifier(p)
		if err != nil {
			return Sort{}, err
		}
		var args []Sort
		for !p.IsCloseParenNext() {
			arg, err := ParseSort(p)
			if err != nil {
				return Sort{}, err
			}
			args = append(args, arg)
		}
		if err := p.CloseParen(); err != nil {
			return Sort{}, err
		}
		return Sort{Ident: id, Args: args}, nil
	}

	id, err := ParseIdentifier(p)
	if err != nil {
		return Sort{}, err
	}
	return BareSort(id), nil
}
