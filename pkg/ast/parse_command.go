package ast

import (
	"strconv"
	"strings"

	"go.smtlib.dev/smtlib/pkg/lexicon"
)

// ParseCommand parses one top-level `(command-name ...)` form, dispatching on
// the command-name symbol (spec.md §4.2: "at `( symbol ...` the parser
// matches the symbol against the command name table").
func ParseCommand(p *Parser) (Command, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	nameTok, err := p.Expect(lexicon.KindSymbol)
	if err != nil {
		return nil, err
	}

	var cmd Command
	switch nameTok.Text {
	case "assert":
		term, perr := ParseTerm(p)
		if perr != nil {
			return nil, perr
		}
		cmd = AssertCmd{Term: term}
	case "check-sat":
		cmd = CheckSatCmd{}
	case "check-sat-assuming":
		ids, perr := parseQualIdentList(p)
		if perr != nil {
			return nil, perr
		}
		cmd = CheckSatAssumingCmd{Assumptions: ids}
	case "push":
		n, perr := parseOptionalNumeral(p, 1)
		if perr != nil {
			return nil, perr
		}
		cmd = PushCmd{N: n}
	case "pop":
		n, perr := parseOptionalNumeral(p, 1)
		if perr != nil {
			return nil, perr
		}
		cmd = PopCmd{N: n}
	case "reset":
		cmd = ResetCmd{}
	case "reset-assertions":
		cmd = ResetAssertionsCmd{}
	case "exit":
		cmd = ExitCmd{}
	case "declare-const":
		name, perr := parseSymbolText(p)
		if perr != nil {
			return nil, perr
		}
		sort, perr := ParseSort(p)
		if perr != nil {
			return nil, perr
		}
		cmd = DeclareConstCmd{Name: name, Sort: sort}
	case "declare-fun":
		name, perr := parseSymbolText(p)
		if perr != nil {
			return nil, perr
		}
		if perr := p.OpenParen(); perr != nil {
			return nil, perr
		}
		var params []Sort
		for !p.IsCloseParenNext() {
			s, perr := ParseSort(p)
			if perr != nil {
				return nil, perr
			}
			params = append(params, s)
		}
		if perr := p.CloseParen(); perr != nil {
			return nil, perr
		}
		result, perr := ParseSort(p)
		if perr != nil {
			return nil, perr
		}
		cmd = DeclareFunCmd{Name: name, Params: params, Result: result}
	case "declare-sort":
		name, perr := parseSymbolText(p)
		if perr != nil {
			return nil, perr
		}
		arityTok, perr := p.Expect(lexicon.KindNumeral)
		if perr != nil {
			return nil, perr
		}
		arity, _ := strconv.Atoi(arityTok.Text)
		cmd = DeclareSortCmd{Name: name, Arity: arity}
	case "define-sort":
		name, perr := parseSymbolText(p)
		if perr != nil {
			return nil, perr
		}
		if perr := p.OpenParen(); perr != nil {
			return nil, perr
		}
		var params []string
		for !p.IsCloseParenNext() {
			s, perr := parseSymbolText(p)
			if perr != nil {
				return nil, perr
			}
			params = append(params, s)
		}
		if perr := p.CloseParen(); perr != nil {
			return nil, perr
		}
		body, perr := ParseSort(p)
		if perr != nil {
			return nil, perr
		}
		cmd = DefineSortCmd{Name: name, Params: params, Body: body}
	case "declare-datatype":
		name, perr := parseSymbolText(p)
		if perr != nil {
			return nil, perr
		}
		decl, perr := parseDatatypeDecl(p)
		if perr != nil {
			return nil, perr
		}
		cmd = DeclareDatatypeCmd{Name: name, Decl: decl}
	case "declare-datatypes":
		if perr := p.OpenParen(); perr != nil {
			return nil, perr
		}
		var sorts []SortedVarArity
		for !p.IsCloseParenNext() {
			if perr := p.OpenParen(); perr != nil {
				return nil, perr
			}
			sname, perr := parseSymbolText(p)
			if perr != nil {
				return nil, perr
			}
			arityTok, perr := p.Expect(lexicon.KindNumeral)
			if perr != nil {
				return nil, perr
			}
			arity, _ := strconv.Atoi(arityTok.Text)
			if perr := p.CloseParen(); perr != nil {
				return nil, perr
			}
			sorts = append(sorts, SortedVarArity{Name: sname, Arity: arity})
		}
		if perr := p.CloseParen(); perr != nil {
			return nil, perr
		}
		if perr := p.OpenParen(); perr != nil {
			return nil, perr
		}
		var decls []DatatypeDecl
		for !p.IsCloseParenNext() {
			d, perr := parseDatatypeDecl(p)
			if perr != nil {
				return nil, perr
			}
			decls = append(decls, d)
		}
		if perr := p.CloseParen(); perr != nil {
			return nil, perr
		}
		cmd = DeclareDatatypesCmd{Sorts: sorts, Decls: decls}
	case "define-fun":
		def, perr := parseFunctionDef(p)
		if perr != nil {
			return nil, perr
		}
		cmd = DefineFunCmd{Def: def}
	case "define-fun-rec":
		def, perr := parseFunctionDef(p)
		if perr != nil {
			return nil, perr
		}
		cmd = DefineFunRecCmd{Def: def}
	case "define-funs-rec":
		if perr := p.OpenParen(); perr != nil {
			return nil, perr
		}
		var defs []FunctionDef
		for !p.IsCloseParenNext() {
			if perr := p.OpenParen(); perr != nil {
				return nil, perr
			}
			fname, perr := parseSymbolText(p)
			if perr != nil {
				return nil, perr
			}
			if perr := p.OpenParen(); perr != nil {
				return nil, perr
			}
			var params []SortedVar
			for !p.IsCloseParenNext() {
				if perr := p.OpenParen(); perr != nil {
					return nil, perr
				}
				psym, perr := parseSymbolText(p)
				if perr != nil {
					return nil, perr
				}
				psort, perr := ParseSort(p)
				if perr != nil {
					return nil, perr
				}
				if perr := p.CloseParen(); perr != nil {
					return nil, perr
				}
				params = append(params, SortedVar{Symbol: psym, Sort: psort})
			}
			if perr := p.CloseParen(); perr != nil {
				return nil, perr
			}
			result, perr := ParseSort(p)
			if perr != nil {
				return nil, perr
			}
			if perr := p.CloseParen(); perr != nil {
				return nil, perr
			}
			defs = append(defs, FunctionDef{Name: fname, Params: params, Result: result})
		}
		if perr := p.CloseParen(); perr != nil {
			return nil, perr
		}
		if perr := p.OpenParen(); perr != nil {
			return nil, perr
		}
		var bodies []Term
		for !p.IsCloseParenNext() {
			b, perr := ParseTerm(p)
			if perr != nil {
				return nil, perr
			}
			bodies = append(bodies, b)
		}
		if perr := p.CloseParen(); perr != nil {
			return nil, perr
		}
		cmd = DefineFunsRecCmd{Defs: defs, Bodies: bodies}
	case "get-assertions":
		cmd = GetAssertionsCmd{}
	case "get-assignment":
		cmd = GetAssignmentCmd{}
	case "get-info":
		kw, perr := parseKeywordText(p)
		if perr != nil {
			return nil, perr
		}
		cmd = GetInfoCmd{Keyword: kw}
	case "get-model":
		cmd = GetModelCmd{}
	case "get-option":
		kw, perr := parseKeywordText(p)
		if perr != nil {
			return nil, perr
		}
		cmd = GetOptionCmd{Keyword: kw}
	case "get-proof":
		cmd = GetProofCmd{}
	case "get-unsat-assumptions":
		cmd = GetUnsatAssumptionsCmd{}
	case "get-unsat-core":
		cmd = GetUnsatCoreCmd{}
	case "get-value":
		if perr := p.OpenParen(); perr != nil {
			return nil, perr
		}
		var terms []Term
		for !p.IsCloseParenNext() {
			t, perr := ParseTerm(p)
			if perr != nil {
				return nil, perr
			}
			terms = append(terms, t)
		}
		if len(terms) == 0 {
			tok := p.NthToken(0)
			return nil, newParseError(tok.Span, "get-value requires at least one term")
		}
		if perr := p.CloseParen(); perr != nil {
			return nil, perr
		}
		cmd = GetValueCmd{Terms: terms}
	case "set-info":
		attr, perr := parseAttribute(p)
		if perr != nil {
			return nil, perr
		}
		cmd = SetInfoCmd{Attr: attr}
	case "set-logic":
		logic, perr := parseSymbolText(p)
		if perr != nil {
			return nil, perr
		}
		cmd = SetLogicCmd{Logic: logic}
	case "set-option":
		attr, perr := parseAttribute(p)
		if perr != nil {
			return nil, perr
		}
		cmd = SetOptionCmd{Attr: attr}
	case "echo":
		tok, perr := p.Expect(lexicon.KindString)
		if perr != nil {
			return nil, perr
		}
		cmd = EchoCmd{Text: unescapeStringLiteral(tok.Text)}
	default:
		return nil, newParseError(nameTok.Span, "unknown command %q", nameTok.Text)
	}

	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return cmd, nil
}

func parseOptionalNumeral(p *Parser, defaultVal int) (int, error) {
	if p.Peek() != lexicon.KindNumeral {
		return defaultVal, nil
	}
	tok, err := p.Expect(lexicon.KindNumeral)
	if err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(tok.Text)
	return n, nil
}

func parseQualIdentList(p *Parser) ([]QualIdentifier, error) {
	if err := p.OpenParen(); err != nil {
		return nil, err
	}
	var ids []QualIdentifier
	for !p.IsCloseParenNext() {
		id, err := ParseQualIdentifier(p)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := p.CloseParen(); err != nil {
		return nil, err
	}
	return ids, nil
}

func parseFunctionDef(p *Parser) (FunctionDef, error) {
	name, err := parseSymbolText(p)
	if err != nil {
		return FunctionDef{}, err
	}
	if err := p.OpenParen(); err != nil {
		return FunctionDef{}, err
	}
	var params []SortedVar
	for !p.IsCloseParenNext() {
		if err := p.OpenParen(); err != nil {
			return FunctionDef{}, err
		}
		psym, err := parseSymbolText(p)
		if err != nil {
			return FunctionDef{}, err
		}
		psort, err := ParseSort(p)
		if err != nil {
			return FunctionDef{}, err
		}
		if err := p.CloseParen(); err != nil {
			return FunctionDef{}, err
		}
		params = append(params, SortedVar{Symbol: psym, Sort: psort})
	}
	if err := p.CloseParen(); err != nil {
		return FunctionDef{}, err
	}
	result, err := ParseSort(p)
	if err != nil {
		return FunctionDef{}, err
	}
	body, err := ParseTerm(p)
	if err != nil {
		return FunctionDef{}, err
	}
	return FunctionDef{Name: name, Params: params, Result: result, Body: body}, nil
}

func parseDatatypeDecl(p *Parser) (DatatypeDecl, error) {
	if p.Peek() == lexicon.KindLParen && p.AtReservedWord(1, "par") {
		if err := p.OpenParen(); err != nil {
			return DatatypeDecl{}, err
		}
		if _, err := p.Expect(lexicon.KindReserved); err != nil {
			return DatatypeDecl{}, err
		}
		if err := p.OpenParen(); err != nil {
			return DatatypeDecl{}, err
		}
		var params []string
		for !p.IsCloseParenNext() {
			s, err := parseSymbolText(p)
			if err != nil {
				return DatatypeDecl{}, err
			}
			params = append(params, s)
		}
		if err := p.CloseParen(); err != nil {
			return DatatypeDecl{}, err
		}
		if err := p.OpenParen(); err != nil {
			return DatatypeDecl{}, err
		}
		ctors, err := parseConstructorDecls(p)
		if err != nil {
			return DatatypeDecl{}, err
		}
		if err := p.CloseParen(); err != nil {
			return DatatypeDecl{}, err
		}
		if err := p.CloseParen(); err != nil {
			return DatatypeDecl{}, err
		}
		return DatatypeDecl{Params: params, Constructors: ctors}, nil
	}

	if err := p.OpenParen(); err != nil {
		return DatatypeDecl{}, err
	}
	ctors, err := parseConstructorDecls(p)
	if err != nil {
		return DatatypeDecl{}, err
	}
	if err := p.CloseParen(); err != nil {
		return DatatypeDecl{}, err
	}
	return DatatypeDecl{Constructors: ctors}, nil
}

func parseConstructorDecls(p *Parser) ([]ConstructorDecl, error) {
	var ctors []ConstructorDecl
	for !p.IsCloseParenNext() {
		if err := p.OpenParen(); err != nil {
			return nil, err
		}
		name, err := parseSymbolText(p)
		if err != nil {
			return nil, err
		}
		var selectors []SortedVar
		for !p.IsCloseParenNext() {
			if err := p.OpenParen(); err != nil {
				return nil, err
			}
			sname, err := parseSymbolText(p)
			if err != nil {
				return nil, err
			}
			ssort, err := ParseSort(p)
			if err != nil {
				return nil, err
			}
			if err := p.CloseParen(); err != nil {
				return nil, err
			}
			selectors = append(selectors, SortedVar{Symbol: sname, Sort: ssort})
		}
		if err := p.CloseParen(); err != nil {
			return nil, err
		}
		ctors = append(ctors, ConstructorDecl{Name: name, Selectors: selectors})
	}
	if len(ctors) == 0 {
		tok := p.NthToken(0)
		return nil, newParseError(tok.Span, "datatype requires at least one constructor")
	}
	return ctors, nil
}

// unescapeStringLiteral strips the surrounding quotes and collapses `""`
// escape pairs into a single `"` (spec.md §4.1 string lexeme grammar).
func unescapeStringLiteral(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	inner := raw[1 : len(raw)-1]
	return strings.ReplaceAll(inner, "\"\"", "\"")
}
