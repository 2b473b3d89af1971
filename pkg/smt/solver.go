package smt

import (
	"fmt"
	"math/big"

	"go.smtlib.dev/smtlib/pkg/ast"
	"go.smtlib.dev/smtlib/pkg/backend"
	"go.smtlib.dev/smtlib/pkg/driver"
	"go.smtlib.dev/smtlib/pkg/utils"
)

// SortMismatch is the taxonomy entry for the Solver's declaration
// monotonicity check (spec.md §8 invariant 4): the same identifier was
// observed bound to two different sorts within one session.
type SortMismatch struct {
	Ident    string
	Existing ast.Sort
	Got      ast.Sort
}

func (e *SortMismatch) Error() string {
	return fmt.Sprintf("sort mismatch for %s: declared as %s, re-observed as %s", e.Ident, e.Existing, e.Got)
}

// Solver sits atop a Driver, tracking declared constants and lifting
// check-sat/get-model into a single convenience call (spec.md §4.7).
type Solver struct {
	driver    *driver.Driver
	declared  map[string]ast.Sort
	logicSet  bool
	scopeLog  utils.Stack[int] // per-scope count of assertions issued, for push/pop bookkeeping
	asserted  int
}

// New wraps backend b in a Driver and returns a ready Solver.
func New(b backend.Backend, opts ...driver.Option) (*Solver, error) {
	d, err := driver.New(b, opts...)
	if err != nil {
		return nil, err
	}
	return &Solver{driver: d, declared: make(map[string]ast.Sort)}, nil
}

// SetLogic emits `(set-logic <name>)`. Must be called before any
// declaration if the logic matters; not enforced by this layer.
func (s *Solver) SetLogic(logic string) error {
	_, err := s.driver.Exec(ast.SetLogicCmd{Logic: logic})
	if err != nil {
		return err
	}
	s.logicSet = true
	return nil
}

// SetFieldOrder emits `(define-sort F () (_ FiniteField <prime>))` so later
// uses of the bare `F` sort resolve against the finite field of
// characteristic prime.
func (s *Solver) SetFieldOrder(prime *big.Int) error {
	body := ast.Sort{Ident: ast.Identifier{Symbol: "FiniteField", Indices: []ast.Index{{Numeral: prime.String()}}}}
	cmd := ast.DefineSortCmd{Name: "F", Body: body}
	_, err := s.driver.Exec(cmd)
	return err
}

// Assert walks term, auto-declaring any previously-unseen simple sorted
// identifier, then emits `(assert term)`. The sort annotations Const[T]
// carries internally (so AllConsts can recover a declare-const sort) are
// stripped before the term is sent: once a name is declared, re-qualifying
// every reference to it as `(as x Int)` would be redundant noise.
func (s *Solver) Assert(term Bool) error {
	for _, id := range ast.AllConsts(term.term) {
		if err := s.observe(id); err != nil {
			return err
		}
	}
	stripped := ast.StripSort(term.term)
	if _, err := s.driver.Exec(ast.AssertCmd{Term: stripped}); err != nil {
		return err
	}
	s.asserted++
	return nil
}

func (s *Solver) observe(id ast.QualIdentifier) error {
	if id.Ident.IsIndexed() {
		// Indexed identifiers (e.g. `(_ extract i j)`-built terms) are not
		// auto-declared; the caller is expected to have declared them, or
		// they name a built-in.
		return nil
	}
	key := id.Ident.Symbol
	sort := *id.Sort
	if existing, ok := s.declared[key]; ok {
		if !existing.Equal(sort) {
			return &SortMismatch{Ident: key, Existing: existing, Got: sort}
		}
		return nil
	}
	if _, err := s.driver.Exec(ast.DeclareConstCmd{Name: key, Sort: sort}); err != nil {
		return err
	}
	s.declared[key] = sort
	return nil
}

// CheckSat emits `(check-sat)`.
func (s *Solver) CheckSat() (SatResult, error) {
	resp, err := s.driver.Exec(ast.CheckSatCmd{})
	if err != nil {
		return Unknown, err
	}
	cs, ok := resp.Specific.(ast.CheckSatResponse)
	if !ok {
		return Unknown, fmt.Errorf("smt: check-sat returned an unexpected response shape")
	}
	return satResultFrom(cs), nil
}

// CheckSatAssuming emits `(check-sat-assuming (a1 ... an))`.
func (s *Solver) CheckSatAssuming(assumptions ...Bool) (SatResult, error) {
	ids := make([]ast.QualIdentifier, len(assumptions))
	for i, a := range assumptions {
		ident, ok := a.term.(ast.IdentTerm)
		if !ok {
			return Unknown, fmt.Errorf("smt: check-sat-assuming requires bare literal assumptions")
		}
		ids[i] = ast.Unsorted(ident.Ident.Ident)
	}
	resp, err := s.driver.Exec(ast.CheckSatAssumingCmd{Assumptions: ids})
	if err != nil {
		return Unknown, err
	}
	cs, ok := resp.Specific.(ast.CheckSatResponse)
	if !ok {
		return Unknown, fmt.Errorf("smt: check-sat-assuming returned an unexpected response shape")
	}
	return satResultFrom(cs), nil
}

// GetModel emits `(get-model)` and parses the reply into a Model.
func (s *Solver) GetModel() (Model, error) {
	resp, err := s.driver.Exec(ast.GetModelCmd{})
	if err != nil {
		return Model{}, err
	}
	mr, ok := resp.Specific.(ast.ModelResponse)
	if !ok {
		return Model{}, fmt.Errorf("smt: get-model returned an unexpected response shape")
	}
	return newModelFromResponse(mr), nil
}

// CheckSatWithModel runs CheckSat and, on Sat, follows with GetModel.
func (s *Solver) CheckSatWithModel() (SatResultWithModel, error) {
	result, err := s.CheckSat()
	if err != nil {
		return SatResultWithModel{}, err
	}
	if result != Sat {
		return SatResultWithModel{Result: result}, nil
	}
	model, err := s.GetModel()
	if err != nil {
		return SatResultWithModel{}, err
	}
	return SatResultWithModel{Result: result, Model: &model}, nil
}

// Push opens n new assertion-stack scopes.
func (s *Solver) Push(n int) error {
	if _, err := s.driver.Exec(ast.PushCmd{N: n}); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		s.scopeLog.Push(s.asserted)
	}
	return nil
}

// Pop closes n assertion-stack scopes.
func (s *Solver) Pop(n int) error {
	if _, err := s.driver.Exec(ast.PopCmd{N: n}); err != nil {
		return err
	}
	for i := 0; i < n && s.scopeLog.Count() > 0; i++ {
		if mark, err := s.scopeLog.Pop(); err == nil {
			s.asserted = mark
		}
	}
	return nil
}

// Close releases the underlying Driver/Backend.
func (s *Solver) Close() error { return s.driver.Close() }
