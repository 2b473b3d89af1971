// Package driver implements the command/response protocol discipline that
// sits between the typed solver façade and a raw Backend: rendering
// commands to their surface text, dispatching each reply to the right
// response grammar, and enforcing the print-success handshake every
// interaction in this module depends on.
package driver

import (
	"fmt"
	"io"

	"go.smtlib.dev/smtlib/pkg/ast"
	"go.smtlib.dev/smtlib/pkg/backend"
)

// ProtocolError is the taxonomy entry for replies that do not fit the
// response grammar selected for the sent command: text that fails to lex or
// parse, or trailing data after the response. A solver's "(error ...)"
// reply is reported as an SmtError instead.
type ProtocolError struct {
	Command  string
	Response string
	Reason   string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: command %q got %q: %s", e.Command, e.Response, e.Reason)
}

// SmtError wraps a solver-reported "(error \"...\")" response, the
// taxonomy entry spec.md §7 reserves for rejections the solver itself
// raises as opposed to a parse-level failure on our side.
type SmtError struct {
	Command string
	Message string
}

func (e *SmtError) Error() string {
	return fmt.Sprintf("smt error: command %q: %s", e.Command, e.Message)
}

// Driver owns one Backend connection and speaks the SMT-LIB command/
// response protocol over it: every Exec renders a Command, sends its text,
// and parses the reply according to the grammar ast.ExpectedResponseFor
// derives from that same Command.
type Driver struct {
	backend backend.Backend
	log     io.Writer // nil disables logging
}

// Option configures a Driver at construction time.
type Option func(*Driver)

// WithLog attaches a writer that every sent command and received response
// is echoed to, mirroring the teacher's env-var-gated debug trace.
func WithLog(w io.Writer) Option {
	return func(d *Driver) { d.log = w }
}

// New wraps b and immediately issues `(set-option :print-success true)`,
// the handshake spec.md §4.4 requires of every session: without it, plain
// "success" acknowledgements are not guaranteed and the Driver's response
// dispatch cannot tell a silent success from a dropped reply.
func New(b backend.Backend, opts ...Option) (*Driver, error) {
	d := &Driver{backend: b}
	for _, opt := range opts {
		opt(d)
	}

	printSuccess := ast.SetOptionCmd{
		Attr: ast.Attribute{Keyword: ":print-success", Value: symbolValue("true")},
	}
	if _, err := d.exec(printSuccess, ast.ExpectPlain); err != nil {
		return nil, fmt.Errorf("driver: enabling print-success: %w", err)
	}
	return d, nil
}

func symbolValue(s string) *ast.AttributeValue {
	v := ast.SymbolAttrValue(s)
	return &v
}

// Exec renders cmd, sends it through the Backend, and parses the reply
// using the response grammar ast.ExpectedResponseFor(cmd) selects.
func (d *Driver) Exec(cmd ast.Command) (ast.GeneralResponse, error) {
	return d.exec(cmd, ast.ExpectedResponseFor(cmd))
}

func (d *Driver) exec(cmd ast.Command, expect ast.ExpectedResponse) (ast.GeneralResponse, error) {
	text := cmd.String()
	d.logf("-> %s", text)

	raw, err := d.backend.Exec(text)
	if err != nil {
		return ast.GeneralResponse{}, fmt.Errorf("driver: backend exec: %w", err)
	}
	d.logf("<- %s", raw)

	p, err := ast.NewParser([]byte(raw))
	if err != nil {
		return ast.GeneralResponse{}, &ProtocolError{Command: text, Response: raw, Reason: err.Error()}
	}
	resp, err := ast.ParseGeneralResponse(p, expect)
	if err != nil {
		return ast.GeneralResponse{}, &ProtocolError{Command: text, Response: raw, Reason: err.Error()}
	}
	if err := p.ExpectEOF(); err != nil {
		return ast.GeneralResponse{}, &ProtocolError{Command: text, Response: raw, Reason: "trailing data after response"}
	}
	if resp.Error != "" {
		return resp, &SmtError{Command: text, Message: resp.Error}
	}
	return resp, nil
}

func (d *Driver) logf(format string, args ...any) {
	if d.log == nil {
		return
	}
	fmt.Fprintf(d.log, format+"\n", args...)
}

// Close releases the underlying Backend.
func (d *Driver) Close() error { return d.backend.Close() }
