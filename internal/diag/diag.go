// Package diag provides the diagnostics reported by the lexer and parser.
package diag

import (
	"fmt"
	"strings"

	"minipas/internal/span"
	"minipas/internal/token"
)

// Severity indicates the severity of a diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Kind classifies a diagnostic. Each kind has a stable code.
type Kind int

const (
	UnterminatedString Kind = iota + 1
	UnexpectedCharacter
	MalformedNumber
	ExpectedToken
	UnexpectedToken
	UnexpectedEndOfInput
	TooManyErrors
)

var kindInfo = map[Kind]struct{ name, code string }{
	UnterminatedString:   {"UnterminatedString", "E1001"},
	UnexpectedCharacter:  {"UnexpectedCharacter", "E1003"},
	MalformedNumber:      {"MalformedNumber", "E1004"},
	ExpectedToken:        {"ExpectedToken", "E2001"},
	UnexpectedToken:      {"UnexpectedToken", "E2002"},
	UnexpectedEndOfInput: {"UnexpectedEndOfInput", "E2003"},
	TooManyErrors:        {"TooManyErrors", "E2099"},
}

func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Code returns the stable code of the kind, e.g. "E2001".
func (k Kind) Code() string {
	if info, ok := kindInfo[k]; ok {
		return info.code
	}
	return "E0000"
}

// Diagnostic represents a positioned problem in the source text.
type Diagnostic struct {
	Kind     Kind         `json:"kind"`
	Severity Severity     `json:"severity"`
	Message  string       `json:"message"`
	Expected []token.Kind `json:"expected,omitempty"` // ExpectedToken only
	Found    token.Token  `json:"found"`              // offending token, if any
	Span     span.Span    `json:"span"`
	Hint     string       `json:"hint,omitempty"`
}

// Code returns the stable code of the diagnostic's kind.
func (d Diagnostic) Code() string {
	return d.Kind.Code()
}

// String returns a human-readable representation of the diagnostic.
func (d Diagnostic) String() string {
	msg := fmt.Sprintf("[%s] %s: %s", d.Code(), d.Severity, d.Message)
	if d.Span.Start.IsValid() {
		msg = fmt.Sprintf("[%s] %s at %s: %s", d.Code(), d.Severity, d.Span.Start, d.Message)
	}
	if d.Hint != "" {
		msg += " (hint: " + d.Hint + ")"
	}
	return msg
}

func (d Diagnostic) Error() string {
	return d.String()
}

// WithHint returns a copy of d carrying hint.
func (d Diagnostic) WithHint(hint string) Diagnostic {
	d.Hint = hint
	return d
}

// Errorf creates an error diagnostic of the given kind at the given span.
func Errorf(kind Kind, s span.Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Kind:     kind,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Span:     s,
	}
}

// Expected creates an ExpectedToken diagnostic at found.
func Expected(found token.Token, want ...token.Kind) Diagnostic {
	names := make([]string, len(want))
	for i, k := range want {
		names[i] = k.Describe()
	}
	var expected string
	switch len(names) {
	case 1:
		expected = names[0]
	default:
		expected = "one of " + strings.Join(names, ", ")
	}
	d := Errorf(ExpectedToken, found.Span, "expected %s, found %s", expected, found.Describe())
	d.Expected = want
	d.Found = found
	return d
}

// Unexpected creates an UnexpectedToken diagnostic at found. what names the
// construct that could not start there, e.g. "statement".
func Unexpected(found token.Token, what string) Diagnostic {
	d := Errorf(UnexpectedToken, found.Span, "unexpected %s, expected %s", found.Describe(), what)
	d.Found = found
	return d
}

// EndOfInput creates an UnexpectedEndOfInput diagnostic at the EOF token.
func EndOfInput(eof token.Token, what string) Diagnostic {
	d := Errorf(UnexpectedEndOfInput, eof.Span, "unexpected end of input, expected %s", what)
	d.Found = eof
	return d
}

// List is an ordered collection of diagnostics. A non-empty List is an error.
type List []Diagnostic

func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].String()
	}
	lines := make([]string, len(l))
	for i, d := range l {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// Err returns l as an error, or nil when l is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// HasErrors reports whether any diagnostic has error severity.
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Reporter collects diagnostics up to a limit. Each accepted diagnostic is
// also passed to the emitter, when one is set.
type Reporter struct {
	limit int
	emit  func(Diagnostic)
	list  List
	full  bool
}

// NewReporter returns a Reporter accepting at most limit diagnostics
// (unlimited when limit <= 0). emit may be nil.
func NewReporter(limit int, emit func(Diagnostic)) *Reporter {
	return &Reporter{limit: limit, emit: emit}
}

// Report records d. Once limit diagnostics are held, the next report is
// replaced by a single TooManyErrors diagnostic and every later one is
// dropped. Report returns false when d was not recorded.
func (r *Reporter) Report(d Diagnostic) bool {
	if r.full {
		return false
	}
	if r.limit > 0 && len(r.list) >= r.limit {
		r.full = true
		r.push(Errorf(TooManyErrors, d.Span, "too many errors, stopping after %d", r.limit))
		return false
	}
	r.push(d)
	return true
}

func (r *Reporter) push(d Diagnostic) {
	r.list = append(r.list, d)
	if r.emit != nil {
		r.emit(d)
	}
}

// Full reports whether the limit was exceeded.
func (r *Reporter) Full() bool { return r.full }

// Len returns the number of recorded diagnostics.
func (r *Reporter) Len() int { return len(r.list) }

// Diagnostics returns the recorded diagnostics in report order.
func (r *Reporter) Diagnostics() List { return r.list }
