package runner

import (
	"io"
)

// Handler renders a report.
// This allows switching between Text (CLI/TUI) and JSON (structured) output.
type Handler interface {
	Write(w io.Writer, r Report) error
}

// ContentRenderer transforms markdown before it is written, e.g. into ANSI
// for a terminal, without coupling this package to a TUI library.
type ContentRenderer func(string) (string, error)

// Styler decorates report lines, typically with terminal colours.
type Styler interface {
	Error(s string) string
	Warning(s string) string
	Success(s string) string
}

type plainStyler struct{}

func (plainStyler) Error(s string) string   { return s }
func (plainStyler) Warning(s string) string { return s }
func (plainStyler) Success(s string) string { return s }
