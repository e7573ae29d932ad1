package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/DOCtorActoAntohich/fsa/pkg/ports"
)

// LoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.Loader.
// expected maps source names the loader can resolve to the automaton it must produce.
func LoaderContractTest(t *testing.T, loader ports.Loader, expected map[string]*domain.Automaton) {
	t.Helper()
	ctx := context.Background()

	t.Run("Load_Success", func(t *testing.T) {
		for name, want := range expected {
			got, err := loader.Load(ctx, name)
			if err != nil {
				t.Fatalf("unexpected error loading %s: %v", name, err)
			}
			if got.Fingerprint() != want.Fingerprint() {
				t.Errorf("automaton mismatch for %s. got %+v, want %+v", name, got, want)
			}
		}
	})

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := loader.Load(ctx, "non-existent-automaton")
		if err == nil {
			t.Error("expected error for non-existent source, got nil")
		}
		if errors.Is(err, domain.ErrMalformed) {
			t.Errorf("a missing source must not be reported as malformed: %v", err)
		}
	})

	t.Run("Load_Isolation", func(t *testing.T) {
		for name := range expected {
			first, err := loader.Load(ctx, name)
			if err != nil {
				t.Fatalf("unexpected error loading %s: %v", name, err)
			}
			first.States = append(first.States[:0], "mutated")

			second, err := loader.Load(ctx, name)
			if err != nil {
				t.Fatalf("unexpected error reloading %s: %v", name, err)
			}
			if second.Fingerprint() != expected[name].Fingerprint() {
				t.Errorf("mutating a loaded automaton leaked into the loader for %s", name)
			}
		}
	})
}
