package ports

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DOCtorActoAntohich/fsa/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache implementation
// adheres to the defined interface contract.
func RunResultCacheContract(t *testing.T, cache ResultCache) {
	ctx := context.Background()
	key := fmt.Sprintf("contract-%d", time.Now().UnixNano())

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, key+"-missing")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Set and Get", func(t *testing.T) {
		expr := "(a)(eps)*(b)|({})"
		require.NoError(t, cache.Set(ctx, key, expr, 0))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, expr, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, "a", 0))
		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "a", got)
	})

	t.Run("Empty Expression Is A Hit", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key+"-empty", "", 0))
		got, err := cache.Get(ctx, key+"-empty")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Delete(ctx, key))
		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)

		assert.NoError(t, cache.Delete(ctx, key), "deleting twice should be a no-op")
	})
}
