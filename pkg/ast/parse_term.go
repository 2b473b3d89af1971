package ast

import "go.smtlib.dev/smtlib/pkg/lexicon"

// ParseTerm is the recursive-descent entry point for the Term sum type
// (spec.md §4.2): dispatch by looking at the next one or two tokens.
func ParseTerm(p *Parser) (Term, error) {
	if IsStartOfSpecConstant(p, 0) {
		c, err := ParseSpecConstant(p)
		if err != nil {
			return nil, err
		}
		return ConstTerm{Value: c}, nil
	}

	if !p.IsStartOfList() {
		id, err := ParseQualIdentifier(p)
		if err != nil {
			return nil, err
		}
		return IdentTerm{Ident: id}, nil
	}

	switch {
	case p.AtReservedWord(1, "let"):
		return parseLetTerm(p)
	case p.AtReservedWord(1, "forall"):
		return parseForallTerm(p)
	case p.AtReservedWord(1, "exists"):
		return parseExistsTerm(p)
	case p.AtReservedWord(1, "match"):
		return parseMatchTerm(p)
	case p.AtReservedWord(1, "!"):
		return parseAnnotationTerm(p)
	case p.AtReservedWord(1, "as"):
		id, err := ParseQualIdentifier(p)
		if err != nil {
			return nil, err
		}
		return IdentTerm{Ident: id}, nil
	default:
		return parseAppTerm(p)
	}
}

func parseAppTerm(p *Parser) (Term, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	fn, err := ParseQualIdentifier(p)
	if err != nil {
		return nil, err
	}
	var args []Term
	for !p.IsCloseParenNext() {
		arg, err := ParseTerm(p)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		tok := p.NthToken(0)
		return nil, newParseError(tok.Span, "function application requires at least one argument")
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return AppTerm{Func: fn, Args: args}, nil
}

func parseLetTerm(p *Parser) (Term, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	if _, err := p.Expect(lexicon.KindReserved); err != nil {
		return nil, err
	}
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	var bindings []Binding
	for !p.IsCloseParenNext() {
		if err := p.OpenParen(); err != nil {
			return nil, err
		}
		sym, err := parseSymbolText(p)
		if err != nil {
			return nil, err
		}
		val, err := ParseTerm(p)
		if err != nil {
			return nil, err
		}
		if err := p.CloseParen(); err != nil {
			return nil, err
		}
		bindings = append(bindings, Binding{Symbol: sym, Value: val})
	}
	if len(bindings) == 0 {
		tok := p.NthToken(0)
		return nil, newParseError(tok.Span, "let requires at least one binding")
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	body, err := ParseTerm(p)
	if err != nil {
		return nil, err
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return LetTerm{Bindings: bindings, Body: body}, nil
}

func parseSortedVarList(p *Parser) ([]SortedVar, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	var vars []SortedVar
	for !p.IsCloseParenNext() {
		if err := p.OpenParen(); err != nil {
			return nil, err
		}
		sym, err := parseSymbolText(p)
		if err != nil {
			return nil, err
		}
		sort, err := ParseSort(p)
		if err != nil {
			return nil, err
		}
		if err := p.CloseParen(); err != nil {
			return nil, err
		}
		vars = append(vars, SortedVar{Symbol: sym, Sort: sort})
	}
	if len(vars) == 0 {
		tok := p.NthToken(0)
		return nil, newParseError(tok.Span, "quantifier requires at least one bound variable")
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return vars, nil
}

func parseForallTerm(p *Parser) (Term, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	if _, err := p.Expect(lexicon.KindReserved); err != nil {
		return nil, err
	}
	vars, err := parseSortedVarList(p)
	if err != nil {
		return nil, err
	}
	body, err := ParseTerm(p)
	if err != nil {
		return nil, err
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return ForallTerm{Vars: vars, Body: body}, nil
}

func parseExistsTerm(p *Parser) (Term, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	if _, err := p.Expect(lexicon.KindReserved); err != nil {
		return nil, err
	}
	vars, err := parseSortedVarList(p)
	if err != nil {
		return nil, err
	}
	body, err := ParseTerm(p)
	if err != nil {
		return nil, err
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return ExistsTerm{Vars: vars, Body: body}, nil
}

func parsePattern(p *Parser) (Pattern, error) {
	if p.Peek() == lexicon.KindSymbol {
		sym, err := parseSymbolText(p)
		if err != nil {
			return Pattern{}, err
		}
		return Pattern{Symbol: sym}, nil
	}
	if err := p.OpenParen(); err != nil {
		return Pattern{}, err
	}
	sym, err := parseSymbolText(p)
	if err != nil {
		return Pattern{}, err
	}
	var args []string
	for !p.IsCloseParenNext() {
		a, err := parseSymbolText(p)
		if err != nil {
			return Pattern{}, err
		}
		args = append(args, a)
	}
	if err := p.CloseParen(); err != nil {
		return Pattern{}, err
	}
	return Pattern{Symbol: sym, Args: args}, nil
}

func parseMatchTerm(p *Parser) (Term, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	if _, err := p.Expect(lexicon.KindReserved); err != nil {
		return nil, err
	}
	scrutinee, err := ParseTerm(p)
	if err != nil {
		return nil, err
	}
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	var cases []MatchCase
	for !p.IsCloseParenNext() {
		if err := p.OpenParen(); err != nil {
			return nil, err
		}
		pat, err := parsePattern(p)
		if err != nil {
			return nil, err
		}
		body, err := ParseTerm(p)
		if err != nil {
			return nil, err
		}
		if err := p.CloseParen(); err != nil {
			return nil, err
		}
		cases = append(cases, MatchCase{Pattern: pat, Body: body})
	}
	if len(cases) == 0 {
		tok := p.NthToken(0)
		return nil, newParseError(tok.Span, "match requires at least one case")
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return MatchTerm{Scrutinee: scrutinee, Cases: cases}, nil
}

func parseAnnotationTerm(p *Parser) (Term, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	if _, err := p.Expect(lexicon.KindReserved); err != nil {
		return nil, err
	}
	inner, err := ParseTerm(p)
	if err != nil {
		return nil, err
	}
	var attrs []Attribute
	for !p.IsCloseParenNext() {
		attr, err := parseAttribute(p)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
	if len(attrs) == 0 {
		tok := p.NthToken(0)
		return nil, newParseError(tok.Span, "annotation requires at least one attribute")
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return AnnotationTerm{Term: inner, Attrs: attrs}, nil
}

// parseAttribute parses `:keyword` or `:keyword value`.
func parseAttribute(p *Parser) (Attribute, error) {
	kw, err := parseKeywordText(p)
	if err != nil {
		return Attribute{}, err
	}
	if !isStartOfAttributeValue(p, 0) {
		return Attribute{Keyword: kw}, nil
	}
	val, err := parseAttributeValue(p)
	if err != nil {
		return Attribute{}, err
	}
	return Attribute{Keyword: kw, Value: &val}, nil
}

func isStartOfAttributeValue(p *Parser, offset int) bool {
	switch p.Nth(offset) {
	case lexicon.KindKeyword, lexicon.KindRParen, lexicon.KindEOF:
		return false
	default:
		return true
	}
}

func parseAttributeValue(p *Parser) (AttributeValue, error) {
	if IsStartOfSpecConstant(p, 0) {
		c, err := ParseSpecConstant(p)
		if err != nil {
			return AttributeValue{}, err
		}
		return ConstAttrValue(c), nil
	}
	if p.Peek() == lexicon.KindSymbol {
		sym, err := parseSymbolText(p)
		if err != nil {
			return AttributeValue{}, err
		}
		return SymbolAttrValue(sym), nil
	}
	items, err := parseSExprList(p)
	if err != nil {
		return AttributeValue{}, err
	}
	return SExprAttrValue(items), nil
}

// ParseSExpr parses one generic S-expression: a constant, symbol, keyword,
// or a parenthesized list of S-expressions (spec.md §3).
func ParseSExpr(p *Parser) (SExpr, error) {
	switch {
	case IsStartOfSpecConstant(p, 0):
		c, err := ParseSpecConstant(p)
		if err != nil {
			return nil, err
		}
		return SExprConst{Value: c}, nil
	case p.Peek() == lexicon.KindSymbol:
		sym, err := parseSymbolText(p)
		if err != nil {
			return nil, err
		}
		return SExprSymbol{Symbol: sym}, nil
	case p.Peek() == lexicon.KindKeyword:
		kw, err := parseKeywordText(p)
		if err != nil {
			return nil, err
		}
		return SExprKeyword{Keyword: kw}, nil
	case p.Peek() == lexicon.KindLParen:
		items, err := parseSExprList(p)
		if err != nil {
			return nil, err
		}
		return SExprList{Items: items}, nil
	default:
		tok := p.NthToken(0)
		return nil, newParseError(tok.Span, "expected an s-expression, got %s %q", tok.Kind, tok.Text)
	}
}

func parseSExprList(p *Parser) ([]SExpr, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	var items []SExpr
	for !p.IsCloseParenNext() {
		it, err := ParseSExpr(p)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return items, nil
}
