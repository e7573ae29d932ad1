package memory_test

import (
	"context"
	"testing"

	"github.com/DOCtorActoAntohich/fsa/pkg/adapters/memory"
	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/DOCtorActoAntohich/fsa/pkg/dsl"
	"github.com/DOCtorActoAntohich/fsa/pkg/ports/tests"
)

func TestMemoryLoader_Contract(t *testing.T) {
	automata := map[string]*domain.Automaton{
		"switch": dsl.New().States("on", "off").Alphabet("flip").Initial("off").Final("on").
			On("off", "flip", "on").On("on", "flip", "off").Build(),
		"empty-initial": dsl.New().States("s1").Alphabet("a").Build(),
	}

	loader := memory.NewFromAutomata(automata)
	tests.LoaderContractTest(t, loader, automata)
}

func TestMemoryLoader_Malformed(t *testing.T) {
	loader := memory.NewLoader(map[string]string{"bad": "states=[]"})

	_, err := loader.Load(context.Background(), "bad")
	if domain.CodeOf(err) != domain.CodeMalformed {
		t.Errorf("expected E5, got %v", err)
	}
}

func TestMemoryLoader_Names(t *testing.T) {
	loader := memory.NewLoader(map[string]string{"b": "", "a": ""})
	names := loader.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected sorted names [a b], got %v", names)
	}
}
