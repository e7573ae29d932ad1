package runner

import (
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
)

// Mode selects what the runner computes.
type Mode int

const (
	// ModeValidate reports errors, warnings and completeness.
	ModeValidate Mode = iota
	// ModeRegex reports the regular expression or the blocking error.
	ModeRegex
)

func (m Mode) String() string {
	switch m {
	case ModeValidate:
		return "validate"
	case ModeRegex:
		return "regex"
	}
	return "unknown"
}

// Status is the top-level verdict of a report.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Report is the result of one run, independent of its rendering.
type Report struct {
	Mode     Mode        `json:"-"`
	Status   Status      `json:"status"`
	Code     domain.Code `json:"code,omitempty"`
	Error    string      `json:"error,omitempty"`
	Warnings []string    `json:"warnings,omitempty"`
	Complete *bool       `json:"complete,omitempty"`
	Regex    string      `json:"regex,omitempty"`
}

// ValidationReport converts a validation outcome.
func ValidationReport(o domain.Outcome) Report {
	if o.Err != nil {
		return Failure(ModeValidate, o.Err)
	}
	complete := o.Complete
	r := Report{Mode: ModeValidate, Status: StatusOK, Complete: &complete}
	for _, w := range o.Warnings {
		r.Warnings = append(r.Warnings, w.Message(""))
	}
	return r
}

// RegexReport wraps a synthesized expression.
func RegexReport(expr string) Report {
	return Report{Mode: ModeRegex, Status: StatusOK, Regex: expr}
}

// Failure reports a blocking error.
func Failure(mode Mode, err *domain.Error) Report {
	return Report{Mode: mode, Status: StatusError, Code: err.Code, Error: err.Error()}
}

// Malformed reports an unreadable description (E5).
func Malformed(mode Mode) Report {
	return Failure(mode, domain.NewError(domain.CodeMalformed, ""))
}

// OK reports whether no blocking error was found.
func (r Report) OK() bool {
	return r.Status == StatusOK
}
