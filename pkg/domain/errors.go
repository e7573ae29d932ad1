package domain

import (
	"errors"
	"fmt"
)

// Code is a stable identifier for a validation error or warning.
type Code string

const (
	CodeUnknownState     Code = "E1"
	CodeDisjoint         Code = "E2"
	CodeUnknownSymbol    Code = "E3"
	CodeUndefinedInitial Code = "E4"
	CodeMalformed        Code = "E5"
	CodeNondeterministic Code = "E6"

	WarnNoFinal          Code = "W1"
	WarnUnreachable      Code = "W2"
	WarnNondeterministic Code = "W3"
)

var messages = map[Code]string{
	CodeUnknownState:     "A state '%s' is not in the set of states",
	CodeDisjoint:         "Some states are disjoint",
	CodeUnknownSymbol:    "A transition '%s' is not represented in the alphabet",
	CodeUndefinedInitial: "Initial state is not defined",
	CodeMalformed:        "Input file is malformed",
	CodeNondeterministic: "FSA is nondeterministic",
	WarnNoFinal:          "Accepting state is not defined",
	WarnUnreachable:      "Some states are not reachable from the initial state",
	WarnNondeterministic: "FSA is nondeterministic",
}

// IsWarning reports whether the code is non-blocking.
func (c Code) IsWarning() bool {
	return len(c) > 0 && c[0] == 'W'
}

// Message renders the human-readable line, e.g. "W1: Accepting state is not defined".
// subject fills the placeholder of E1 and E3 and is ignored otherwise.
func (c Code) Message(subject string) string {
	format, ok := messages[c]
	if !ok {
		return string(c)
	}
	if c == CodeUnknownState || c == CodeUnknownSymbol {
		return fmt.Sprintf("%s: "+format, c, subject)
	}
	return fmt.Sprintf("%s: %s", c, format)
}

// Error is a blocking problem with the automaton description.
type Error struct {
	Code    Code
	Subject string // offending state or symbol, when the code names one
}

func (e *Error) Error() string {
	return e.Code.Message(e.Subject)
}

// Is matches any *Error carrying the same code, so the sentinels below
// work with errors.Is regardless of subject.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// NewError builds an *Error.
func NewError(code Code, subject string) *Error {
	return &Error{Code: code, Subject: subject}
}

var (
	ErrUnknownState     = &Error{Code: CodeUnknownState}
	ErrDisjoint         = &Error{Code: CodeDisjoint}
	ErrUnknownSymbol    = &Error{Code: CodeUnknownSymbol}
	ErrUndefinedInitial = &Error{Code: CodeUndefinedInitial}
	ErrMalformed        = &Error{Code: CodeMalformed}
	ErrNondeterministic = &Error{Code: CodeNondeterministic}
)

// CodeOf extracts the code from err, or "" when err carries none.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ErrCacheMiss is returned by result caches when a key is absent.
var ErrCacheMiss = errors.New("cache miss")
