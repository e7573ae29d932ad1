package ports

import (
	"context"

	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
)

// Loader defines how the pipeline obtains automaton descriptions.
// Malformed sources must be reported with an error wrapping domain.ErrMalformed.
type Loader interface {
	// Load parses the description identified by name.
	Load(ctx context.Context, name string) (*domain.Automaton, error)
}
