package compiler

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
)

// Keys of the five description lines, in the order they must appear.
const (
	KeyStates      = "states"
	KeyAlphabet    = "alpha"
	KeyInitial     = "init.st"
	KeyFinal       = "fin.st"
	KeyTransitions = "trans"
)

const (
	state  = `[a-zA-Z0-9]+`
	symbol = `[a-zA-Z0-9_]+`
	trans  = state + `>` + symbol + `>` + state
)

type line struct {
	key     string
	pattern *regexp.Regexp
}

// grammar lists the lines of a description. States and alphabet must be
// non-empty; the initial state may be absent (reported later as E4); final
// states and transitions may be empty.
var grammar = []line{
	{KeyStates, regexp.MustCompile(`^states=\[(` + state + `,)*` + state + `\]$`)},
	{KeyAlphabet, regexp.MustCompile(`^alpha=\[(` + symbol + `,)*` + symbol + `\]$`)},
	{KeyInitial, regexp.MustCompile(`^init\.st=\[(` + state + `)?\]$`)},
	{KeyFinal, regexp.MustCompile(`^fin\.st=\[((` + state + `,)*` + state + `)?\]$`)},
	{KeyTransitions, regexp.MustCompile(`^trans=\[((` + trans + `,)*` + trans + `)?\]$`)},
}

// Parser is responsible for converting raw bytes into an Automaton.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the five-line text description:
//
//	states=[s1,s2,...]
//	alpha=[a1,a2,...]
//	init.st=[s]
//	fin.st=[s1,s2,...]
//	trans=[s1>a>s2,...]
//
// Any deviation wraps domain.ErrMalformed (E5). Whitespace around a line and
// trailing blank lines are ignored.
func (p *Parser) Parse(data []byte) (*domain.Automaton, error) {
	lines, err := splitLines(data)
	if err != nil {
		return nil, err
	}
	if len(lines) != len(grammar) {
		return nil, fmt.Errorf("%w: expected %d lines, got %d", domain.ErrMalformed, len(grammar), len(lines))
	}

	values := make(map[string][]string, len(grammar))
	for i, g := range grammar {
		if !g.pattern.MatchString(lines[i]) {
			return nil, fmt.Errorf("%w: line %d does not match %q", domain.ErrMalformed, i+1, g.key+"=[...]")
		}
		values[g.key] = splitList(lines[i])
	}

	transitions := make([]domain.Transition, 0, len(values[KeyTransitions]))
	for _, raw := range values[KeyTransitions] {
		t, err := domain.ParseTransition(raw)
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, t)
	}

	var initial string
	if init := values[KeyInitial]; len(init) > 0 {
		initial = init[0]
	}

	return domain.New(values[KeyStates], values[KeyAlphabet], initial, values[KeyFinal], transitions), nil
}

func splitLines(data []byte) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformed, err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// splitList returns the comma-separated items between the brackets.
func splitList(l string) []string {
	_, value, _ := strings.Cut(l, "=")
	value = strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
	if value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

// Format renders an automaton back into the text description.
// Parse(Format(a)) yields an equivalent automaton.
func Format(a *domain.Automaton) string {
	trans := make([]string, len(a.Transitions))
	for i, t := range a.Transitions {
		trans[i] = t.String()
	}
	var init []string
	if s, ok := a.InitialState(); ok {
		init = []string{s}
	}

	var sb strings.Builder
	for _, kv := range []struct {
		key   string
		items []string
	}{
		{KeyStates, a.States},
		{KeyAlphabet, a.Alphabet},
		{KeyInitial, init},
		{KeyFinal, a.Final},
		{KeyTransitions, trans},
	} {
		fmt.Fprintf(&sb, "%s=[%s]\n", kv.key, strings.Join(kv.items, ","))
	}
	return sb.String()
}

var (
	stateName  = regexp.MustCompile(`^` + state + `$`)
	symbolName = regexp.MustCompile(`^` + symbol + `$`)
)

// IsStateName reports whether s is a valid state name in descriptions.
func IsStateName(s string) bool {
	return stateName.MatchString(s)
}

// IsSymbol reports whether s is a valid alphabet symbol in descriptions.
func IsSymbol(s string) bool {
	return symbolName.MatchString(s)
}
