package dsl

import (
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
)

// Builder manages the automaton construction.
// Calls accumulate; list order is preserved and matters for the regex layout.
type Builder struct {
	states      []string
	alphabet    []string
	initial     *string
	final       []string
	transitions []domain.Transition
}

// New creates a new automaton builder.
func New() *Builder {
	return &Builder{}
}

// States appends to the state set.
func (b *Builder) States(names ...string) *Builder {
	b.states = append(b.states, names...)
	return b
}

// Alphabet appends to the alphabet.
func (b *Builder) Alphabet(symbols ...string) *Builder {
	b.alphabet = append(b.alphabet, symbols...)
	return b
}

// Initial sets the initial state. Without a call the initial state stays undefined.
func (b *Builder) Initial(name string) *Builder {
	b.initial = &name
	return b
}

// Final appends accepting states.
func (b *Builder) Final(names ...string) *Builder {
	b.final = append(b.final, names...)
	return b
}

// On adds the transition from --symbol--> to.
func (b *Builder) On(from, symbol, to string) *Builder {
	b.transitions = append(b.transitions, domain.Transition{From: from, Symbol: symbol, To: to})
	return b
}

// Build returns the automaton with duplicates collapsed.
// The builder may keep being used afterwards; the result does not share memory with it.
func (b *Builder) Build() *domain.Automaton {
	a := &domain.Automaton{
		States:      append([]string(nil), b.states...),
		Alphabet:    append([]string(nil), b.alphabet...),
		Final:       append([]string(nil), b.final...),
		Transitions: append([]domain.Transition(nil), b.transitions...),
	}
	if b.initial != nil {
		init := *b.initial
		a.Initial = &init
	}
	a.Normalize()
	return a
}
