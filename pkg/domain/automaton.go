package domain

import (
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Automaton is a parsed description of a finite-state automaton.
// It carries no invariants of its own: a freshly loaded value may reference
// unknown states or symbols, which is exactly what the validator reports.
type Automaton struct {
	States      []string     `json:"states" yaml:"states"`
	Alphabet    []string     `json:"alphabet" yaml:"alphabet"`
	Initial     *string      `json:"initial,omitempty" yaml:"initial,omitempty"`
	Final       []string     `json:"final" yaml:"final"`
	Transitions []Transition `json:"transitions" yaml:"transitions"`
}

// New builds an automaton and collapses duplicate states, symbols, final
// states and transitions. An empty initial string means "undefined".
func New(states, alphabet []string, initial string, final []string, transitions []Transition) *Automaton {
	a := &Automaton{
		States:      states,
		Alphabet:    alphabet,
		Final:       final,
		Transitions: transitions,
	}
	if initial != "" {
		a.Initial = &initial
	}
	a.Normalize()
	return a
}

// Normalize removes duplicates in place, keeping the first occurrence.
func (a *Automaton) Normalize() {
	a.States = dedupe(a.States)
	a.Alphabet = dedupe(a.Alphabet)
	a.Final = dedupe(a.Final)

	seen := make(map[Transition]struct{}, len(a.Transitions))
	out := make([]Transition, 0, len(a.Transitions))
	for _, t := range a.Transitions {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	a.Transitions = out
}

// InitialState returns the initial state and whether it is defined.
func (a *Automaton) InitialState() (string, bool) {
	if a.Initial == nil {
		return "", false
	}
	return *a.Initial, true
}

// HasState reports whether name belongs to the state set.
func (a *Automaton) HasState(name string) bool {
	return slices.Contains(a.States, name)
}

// HasSymbol reports whether symbol belongs to the alphabet.
func (a *Automaton) HasSymbol(symbol string) bool {
	return slices.Contains(a.Alphabet, symbol)
}

// Clone returns a deep copy.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		States:      slices.Clone(a.States),
		Alphabet:    slices.Clone(a.Alphabet),
		Final:       slices.Clone(a.Final),
		Transitions: slices.Clone(a.Transitions),
	}
	if a.Initial != nil {
		init := *a.Initial
		c.Initial = &init
	}
	return c
}

// Fingerprint hashes the description in its given order.
// Transition order is part of the key because it drives the regex layout.
func (a *Automaton) Fingerprint() uint64 {
	var sb strings.Builder
	writeList := func(tag string, items []string) {
		sb.WriteString(tag)
		sb.WriteByte('=')
		sb.WriteString(strings.Join(items, ","))
		sb.WriteByte('\n')
	}
	writeList("states", a.States)
	writeList("alpha", a.Alphabet)
	if init, ok := a.InitialState(); ok {
		writeList("init", []string{init})
	} else {
		writeList("init", nil)
	}
	writeList("fin", a.Final)
	trans := make([]string, len(a.Transitions))
	for i, t := range a.Transitions {
		trans[i] = t.String()
	}
	writeList("trans", trans)
	return xxhash.Sum64String(sb.String())
}

func dedupe(items []string) []string {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}
