package ast

import "go.smtlib.dev/smtlib/pkg/lexicon"

// ParseGeneralResponse parses one solver reply. expect selects which
// command-specific payload grammar to try when the reply isn't a plain
// "success" / "(error ...)" / "unsupported" (spec.md §4.2, §4.5): the Driver
// determines expect from the command it just sent via ExpectedResponseFor.
func ParseGeneralResponse(p *Parser, expect ExpectedResponse) (GeneralResponse, error) {
	if p.AtSymbol(0, "success") {
		p.pos++
		return GeneralResponse{Success: true}, nil
	}
	if p.AtSymbol(0, "unsupported") {
		p.pos++
		return GeneralResponse{Unsupported: true}, nil
	}
	if p.Peek() == lexicon.KindLParen && p.AtSymbol(1, "error") {
		if err := p.OpenParen(); err != nil {
			return GeneralResponse{}, err
		}
		p.pos++ // "error" symbol
		tok, err := p.Expect(lexicon.KindString)
		if err != nil {
			return GeneralResponse{}, err
		}
		if err := p.CloseParen(); err != nil {
			return GeneralResponse{}, err
		}
		return GeneralResponse{Error: unescapeStringLiteral(tok.Text)}, nil
	}

	specific, err := parseSpecificSuccess(p, expect)
	if err != nil {
		return GeneralResponse{}, err
	}
	return GeneralResponse{Success: true, Specific: specific}, nil
}

func parseSpecificSuccess(p *Parser, expect ExpectedResponse) (SpecificSuccessResponse, error) {
	switch expect {
	case ExpectCheckSat:
		return parseCheckSatResponse(p)
	case ExpectModel:
		return parseModelResponse(p)
	case ExpectValue:
		return parseGetValueResponse(p)
	case ExpectInfo:
		return parseGetInfoResponse(p)
	case ExpectOption:
		val, err := parseAttributeValue(p)
		if err != nil {
			return nil, err
		}
		return GetOptionResponse{Value: val}, nil
	case ExpectEcho:
		tok, err := p.Expect(lexicon.KindString)
		if err != nil {
			return nil, err
		}
		return EchoResponse{Text: unescapeStringLiteral(tok.Text)}, nil
	case ExpectAssertions:
		terms, err := parseParenTermList(p)
		if err != nil {
			return nil, err
		}
		return GetAssertionsResponse{Terms: terms}, nil
	case ExpectAssignment:
		return parseGetAssignmentResponse(p)
	case ExpectProof:
		sexpr, err := ParseSExpr(p)
		if err != nil {
			return nil, err
		}
		return GetProofResponse{Proof: sexpr}, nil
	case ExpectUnsatAssumptions:
		ids, err := parseQualIdentList(p)
		if err != nil {
			return nil, err
		}
		return GetUnsatAssumptionsResponse{Assumptions: ids}, nil
	case ExpectUnsatCore:
		labels, err := parseSymbolList(p)
		if err != nil {
			return nil, err
		}
		return GetUnsatCoreResponse{Labels: labels}, nil
	default:
		tok := p.NthToken(0)
		return nil, newParseError(tok.Span, "unexpected response token %s %q", tok.Kind, tok.Text)
	}
}

func parseCheckSatResponse(p *Parser) (SpecificSuccessResponse, error) {
	tok, err := p.Expect(lexicon.KindSymbol)
	if err != nil {
		return nil, err
	}
	switch tok.Text {
	case "sat":
		return CheckSatResponse{Sat: true}, nil
	case "unsat":
		return CheckSatResponse{Unsat: true}, nil
	case "unknown":
		return CheckSatResponse{Unknown: true}, nil
	default:
		return nil, newParseError(tok.Span, "expected sat/unsat/unknown, got %q", tok.Text)
	}
}

func parseModelResponse(p *Parser) (SpecificSuccessResponse, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	if p.AtSymbol(0, "model") {
		// some solvers tag the response with a leading "model" symbol;
		// others start directly with the define-fun forms.
		p.pos++
	}
	var defs []Command
	for !p.IsCloseParenNext() {
		d, err := ParseCommand(p)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return ModelResponse{Definitions: defs}, nil
}

func parseGetValueResponse(p *Parser) (SpecificSuccessResponse, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	var pairs []ValuationPair
	for !p.IsCloseParenNext() {
		if err := p.OpenParen(); err != nil {
			return nil, err
		}
		term, err := ParseTerm(p)
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
		pairs = append(pairs, ValuationPair{Term: term, Value: val})
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return GetValueResponse{Pairs: pairs}, nil
}

func parseGetInfoResponse(p *Parser) (SpecificSuccessResponse, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	var attrs []Attribute
	for !p.IsCloseParenNext() {
		a, err := parseAttribute(p)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return GetInfoResponse{Attrs: attrs}, nil
}

func parseGetAssignmentResponse(p *Parser) (SpecificSuccessResponse, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	var assigns []LabeledBool
	for !p.IsCloseParenNext() {
		if err := p.OpenParen(); err != nil {
			return nil, err
		}
		sym, err := parseSymbolText(p)
		if err != nil {
			return nil, err
		}
		boolTok, err := p.Expect(lexicon.KindSymbol)
		if err != nil {
			return nil, err
		}
		if err := p.CloseParen(); err != nil {
			return nil, err
		}
		assigns = append(assigns, LabeledBool{Symbol: sym, Value: boolTok.Text == "true"})
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return GetAssignmentResponse{Assignments: assigns}, nil
}

func parseParenTermList(p *Parser) ([]Term, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	var terms []Term
	for !p.IsCloseParenNext() {
		t, err := ParseTerm(p)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return terms, nil
}

func parseSymbolList(p *Parser) ([]string, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	var syms []string
	for !p.IsCloseParenNext() {
		s, err := parseSymbolText(p)
		if err != nil {
			return nil, err
		}
		syms = append(syms, s)
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return syms, nil
}
