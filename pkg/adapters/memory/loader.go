package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/DOCtorActoAntohich/fsa/internal/compiler"
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
)

// Loader implements ports.Loader using an in-memory map.
type Loader struct {
	sources map[string][]byte
	parser  *compiler.Parser
}

// NewLoader creates a Loader over raw text descriptions.
func NewLoader(data map[string]string) *Loader {
	sources := make(map[string][]byte, len(data))
	for k, v := range data {
		sources[k] = []byte(v)
	}
	return &Loader{
		sources: sources,
		parser:  compiler.NewParser(),
	}
}

// NewFromAutomata creates a Loader from domain objects.
// They are stored in text form, so later changes to the arguments are not visible.
func NewFromAutomata(automata map[string]*domain.Automaton) *Loader {
	data := make(map[string]string, len(automata))
	for name, a := range automata {
		data[name] = compiler.Format(a)
	}
	return NewLoader(data)
}

// Load parses the named description.
func (l *Loader) Load(ctx context.Context, name string) (*domain.Automaton, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, ok := l.sources[name]
	if !ok {
		return nil, fmt.Errorf("automaton not found: %s", name)
	}
	return l.parser.Parse(content)
}

// Names returns all available source names.
func (l *Loader) Names() []string {
	keys := make([]string, 0, len(l.sources))
	for k := range l.sources {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys
}
