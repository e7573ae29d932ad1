package tui

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Styler colours report lines. On non-terminals it leaves text untouched.
type Styler struct {
	profile termenv.Profile
}

// NewStyler picks a colour profile for w: the environment's profile when w
// is a terminal, plain ASCII otherwise (files, pipes, buffers).
func NewStyler(w io.Writer) *Styler {
	if IsTerminal(w) {
		return &Styler{profile: termenv.EnvColorProfile()}
	}
	return &Styler{profile: termenv.Ascii}
}

// NewStylerWithProfile forces a colour profile.
func NewStylerWithProfile(p termenv.Profile) *Styler {
	return &Styler{profile: p}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (s *Styler) Error(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color("#f87171")).Bold().String()
}

func (s *Styler) Warning(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color("#facc15")).String()
}

func (s *Styler) Success(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color("#4ade80")).String()
}
