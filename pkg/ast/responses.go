package ast

import "strings"

// GeneralResponse is the top-level shape every solver reply takes (spec.md
// §4.5): either plain "success", an error, "unsupported", or one of the
// command-specific success payloads below.
type GeneralResponse struct {
	Success     bool
	Unsupported bool
	Error       string // set when the response was `(error "...")`
	Specific    SpecificSuccessResponse
}

// SpecificSuccessResponse is the sum type of the payload-carrying success
// responses, one per introspection command (spec.md §3).
type SpecificSuccessResponse interface {
	isSpecificResponse()
	String() string
}

type CheckSatResponse struct {
	Sat     bool
	Unsat   bool
	Unknown bool
}

func (r CheckSatResponse) String() string {
	switch {
	case r.Sat:
		return "sat"
	case r.Unsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// ModelResponse is `(get-model)`'s payload: the sequence of define-fun
// commands the solver reports as the satisfying interpretation.
type ModelResponse struct{ Definitions []Command }

func (r ModelResponse) String() string {
	parts := make([]string, len(r.Definitions))
	for i, d := range r.Definitions {
		parts[i] = d.String()
	}
	return "(model " + strings.Join(parts, " ") + ")"
}

// ValuationPair is one `(term value)` entry of a get-value response.
type ValuationPair struct {
	Term  Term
	Value Term
}

type GetValueResponse struct{ Pairs []ValuationPair }

func (r GetValueResponse) String() string {
	parts := make([]string, len(r.Pairs))
	for i, p := range r.Pairs {
		parts[i] = "(" + p.Term.String() + " " + p.Value.String() + ")"
	}
	return "(" + strings.Join(parts, " ") + ")"
}

type GetInfoResponse struct{ Attrs []Attribute }

func (r GetInfoResponse) String() string {
	parts := make([]string, len(r.Attrs))
	for i, a := range r.Attrs {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

type GetOptionResponse struct{ Value AttributeValue }

func (r GetOptionResponse) String() string { return r.Value.String() }

type EchoResponse struct{ Text string }

func (r EchoResponse) String() string { return quoteString(r.Text) }

type GetAssertionsResponse struct{ Terms []Term }

func (r GetAssertionsResponse) String() string {
	parts := make([]string, len(r.Terms))
	for i, t := range r.Terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

type GetAssignmentResponse struct {
	Assignments []LabeledBool
}

// LabeledBool is one `(symbol bool-value)` entry of a get-assignment
// response.
type LabeledBool struct {
	Symbol string
	Value  bool
}

func (r GetAssignmentResponse) String() string {
	parts := make([]string, len(r.Assignments))
	for i, a := range r.Assignments {
		v := "false"
		if a.Value {
			v = "true"
		}
		parts[i] = "(" + QuoteSymbolIfNeeded(a.Symbol) + " " + v + ")"
	}
	return "(" + strings.Join(parts, " ") + ")"
}

type GetProofResponse struct{ Proof SExpr }

func (r GetProofResponse) String() string { return r.Proof.String() }

type GetUnsatAssumptionsResponse struct{ Assumptions []QualIdentifier }

func (r GetUnsatAssumptionsResponse) String() string {
	parts := make([]string, len(r.Assumptions))
	for i, a := range r.Assumptions {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

type GetUnsatCoreResponse struct{ Labels []string }

func (r GetUnsatCoreResponse) String() string {
	parts := make([]string, len(r.Labels))
	for i, l := range r.Labels {
		parts[i] = QuoteSymbolIfNeeded(l)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (CheckSatResponse) isSpecificResponse()          {}
func (ModelResponse) isSpecificResponse()              {}
func (GetValueResponse) isSpecificResponse()           {}
func (GetInfoResponse) isSpecificResponse()            {}
func (GetOptionResponse) isSpecificResponse()          {}
func (EchoResponse) isSpecificResponse()               {}
func (GetAssertionsResponse) isSpecificResponse()      {}
func (GetAssignmentResponse) isSpecificResponse()      {}
func (GetProofResponse) isSpecificResponse()           {}
func (GetUnsatAssumptionsResponse) isSpecificResponse() {}
func (GetUnsatCoreResponse) isSpecificResponse()       {}

// ExpectedResponse names the response grammar a Driver must select between
// after issuing a command (spec.md §4.2, §4.5): most commands get the plain
// success/error/unsupported grammar, but the introspection commands carry
// an additional specific-success payload shape.
type ExpectedResponse int

const (
	ExpectPlain ExpectedResponse = iota
	ExpectCheckSat
	ExpectModel
	ExpectValue
	ExpectInfo
	ExpectOption
	ExpectEcho
	ExpectAssertions
	ExpectAssignment
	ExpectProof
	ExpectUnsatAssumptions
	ExpectUnsatCore
)

// ExpectedResponseFor derives which response grammar follows cmd, the
// Driver-side half of the dispatcher spec.md §4.2 describes.
func ExpectedResponseFor(cmd Command) ExpectedResponse {
	switch cmd.(type) {
	case CheckSatCmd, CheckSatAssumingCmd:
		return ExpectCheckSat
	case GetModelCmd:
		return ExpectModel
	case GetValueCmd:
		return ExpectValue
	case GetInfoCmd:
		return ExpectInfo
	case GetOptionCmd:
		return ExpectOption
	case EchoCmd:
		return ExpectEcho
	case GetAssertionsCmd:
		return ExpectAssertions
	case GetAssignmentCmd:
		return ExpectAssignment
	case GetProofCmd:
		return ExpectProof
	case GetUnsatAssumptionsCmd:
		return ExpectUnsatAssumptions
	case GetUnsatCoreCmd:
		return ExpectUnsatCore
	default:
		return ExpectPlain
	}
}
