package ast

// AllConsts collects every sort-qualified identifier reachable in term,
// skipping occurrences that fall under a binder (Let/Forall/Exists/Match)
// rebinding that identifier's simple symbol — the shadowing rule SMT-LIB's
// scoping section requires and this module's own term walker honors
// (see DESIGN.md's Open Question resolution). Identifiers marked Literal
// (e.g. a finite-field `(as ff1 F)` literal) are sort-qualified surface
// syntax, not a declarable name, and are always skipped.
func AllConsts(term Term) []QualIdentifier {
	var out []QualIdentifier
	walkConsts(term, map[string]bool{}, &out)
	return out
}

func walkConsts(term Term, bound map[string]bool, out *[]QualIdentifier) {
	switch t := term.(type) {
	case ConstTerm:
		// no identifiers
	case IdentTerm:
		if t.Ident.Sort != nil && !t.Ident.Literal && !bound[t.Ident.Ident.Symbol] {
			*out = append(*out, t.Ident)
		}
	case AppTerm:
		if t.Func.Sort != nil && !t.Func.Literal && !bound[t.Func.Ident.Symbol] {
			*out = append(*out, t.Func)
		}
		for _, a := range t.Args {
			walkConsts(a, bound, out)
		}
	case LetTerm:
		inner := cloneBound(bound)
		for _, b := range t.Bindings {
			walkConsts(b.Value, bound, out)
			inner[b.Symbol] = true
		}
		walkConsts(t.Body, inner, out)
	case ForallTerm:
		inner := cloneBound(bound)
		for _, v := range t.Vars {
			inner[v.Symbol] = true
		}
		walkConsts(t.Body, inner, out)
	case ExistsTerm:
		inner := cloneBound(bound)
		for _, v := range t.Vars {
			inner[v.Symbol] = true
		}
		walkConsts(t.Body, inner, out)
	case MatchTerm:
		walkConsts(t.Scrutinee, bound, out)
		for _, c := range t.Cases {
			inner := cloneBound(bound)
			inner[c.Pattern.Symbol] = true
			for _, a := range c.Pattern.Args {
				inner[a] = true
			}
			walkConsts(c.Body, inner, out)
		}
	case AnnotationTerm:
		walkConsts(t.Term, bound, out)
	}
}

func cloneBound(bound map[string]bool) map[string]bool {
	out := make(map[string]bool, len(bound)+1)
	for k, v := range bound {
		out[k] = v
	}
	return out
}

// StripSort returns a copy of term with every QualIdentifier::Sorted
// wrapper in identifier and function position, inside binder bodies too,
// reduced to its bare identifier form; the sorted variable lists of
// forall/exists are copied unchanged. It is used when re-emitting a term in a
// context, such as a nested assert, where sort annotations would be
// redundant noise. A Literal identifier's `(as id sort)` form is load-bearing
// surface syntax (it disambiguates the literal itself, not a declared name)
// and is left untouched.
func StripSort(term Term) Term {
	switch t := term.(type) {
	case ConstTerm:
		return t
	case IdentTerm:
		if t.Ident.Literal {
			return t
		}
		return IdentTerm{Ident: Unsorted(t.Ident.Ident)}
	case AppTerm:
		args := make([]Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = StripSort(a)
		}
		if t.Func.Literal {
			return AppTerm{Func: t.Func, Args: args}
		}
		return AppTerm{Func: Unsorted(t.Func.Ident), Args: args}
	case LetTerm:
		bindings := make([]Binding, len(t.Bindings))
		for i, b := range t.Bindings {
			bindings[i] = Binding{Symbol: b.Symbol, Value: StripSort(b.Value)}
		}
		return LetTerm{Bindings: bindings, Body: StripSort(t.Body)}
	case ForallTerm:
		return ForallTerm{Vars: t.Vars, Body: StripSort(t.Body)}
	case ExistsTerm:
		return ExistsTerm{Vars: t.Vars, Body: StripSort(t.Body)}
	case MatchTerm:
		cases := make([]MatchCase, len(t.Cases))
		for i, c := range t.Cases {
			cases[i] = MatchCase{Pattern: c.Pattern, Body: StripSort(c.Body)}
		}
		return MatchTerm{Scrutinee: StripSort(t.Scrutinee), Cases: cases}
	case AnnotationTerm:
		return AnnotationTerm{Term: StripSort(t.Term), Attrs: t.Attrs}
	default:
		return term
	}
}
