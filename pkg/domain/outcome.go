package domain

// Outcome is the classified result of validating an automaton.
// Exactly one of the two shapes applies: Err set (blocking), or Err nil with
// the ordered warnings and the completeness flag.
type Outcome struct {
	Err      *Error `json:"error,omitempty"`
	Warnings []Code `json:"warnings,omitempty"`
	Complete bool   `json:"complete"`
}

// Failed returns an error outcome.
func Failed(err *Error) Outcome {
	return Outcome{Err: err}
}

// Valid returns a non-blocking outcome.
func Valid(warnings []Code, complete bool) Outcome {
	return Outcome{Warnings: warnings, Complete: complete}
}

// OK reports whether no blocking error was found.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// HasWarning reports whether code is among the warnings.
func (o Outcome) HasWarning(code Code) bool {
	for _, w := range o.Warnings {
		if w == code {
			return true
		}
	}
	return false
}
