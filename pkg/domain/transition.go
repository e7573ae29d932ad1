package domain

import (
	"fmt"
	"strings"
)

// Transition is a labelled edge of the automaton.
type Transition struct {
	From   string `json:"from" yaml:"from" mapstructure:"from"`
	Symbol string `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	To     string `json:"to" yaml:"to" mapstructure:"to"`
}

// TransitionSeparator separates the parts of the compact "s1>a>s2" form.
const TransitionSeparator = ">"

// String renders the compact form.
func (t Transition) String() string {
	return t.From + TransitionSeparator + t.Symbol + TransitionSeparator + t.To
}

// ParseTransition reads the compact "from>symbol>to" form.
func ParseTransition(s string) (Transition, error) {
	parts := strings.Split(s, TransitionSeparator)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Transition{}, fmt.Errorf("%w: transition %q", ErrMalformed, s)
	}
	return Transition{From: parts[0], Symbol: parts[1], To: parts[2]}, nil
}
