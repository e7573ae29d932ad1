package ports

import (
	"context"
	"time"
)

// ResultCache keeps synthesized expressions, keyed by automaton fingerprint.
type ResultCache interface {
	// Get returns the cached expression.
	// Returns domain.ErrCacheMiss if the key is absent or expired.
	Get(ctx context.Context, key string) (string, error)

	// Set stores an expression. A zero ttl keeps it until deleted.
	Set(ctx context.Context, key, expr string, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
