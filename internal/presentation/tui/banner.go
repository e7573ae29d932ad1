package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner with a gradient when w is a
// terminal and plain text otherwise.
func PrintBanner(w io.Writer) {
	p := termenv.Ascii
	if IsTerminal(w) {
		p = termenv.EnvColorProfile()
	}

	lines := []struct {
		text, color string
	}{
		{"   __          ", "#818cf8"},
		{"  / _|___ __ _ ", "#a78bfa"},
		{" |  _(_-</ _` |", "#c084fc"},
		{" |_| /__/\\__,_|", "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
