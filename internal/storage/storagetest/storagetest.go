// Package storagetest holds the shared contract tests for storage.Store
// implementations.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Domje/Arc-Looterputer/internal/storage"
)

// Run exercises the Store contract against s. Backend packages
// call it from their own tests.
func Run(t *testing.T, s storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		v, ok, err := s.Get(ctx, "contract:missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "contract:list", []byte(`[{"id":"battery"}]`)))

		v, ok, err := s.Get(ctx, "contract:list")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `[{"id":"battery"}]`, string(v))
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, s.Set(ctx, "contract:list", []byte(`[]`)))

		v, ok, err := s.Get(ctx, "contract:list")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.JSONEq(t, `[]`, string(v))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "contract:list"))
		require.NoError(t, s.Delete(ctx, "contract:list"), "deleting a missing key is not an error")

		_, ok, err := s.Get(ctx, "contract:list")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, s.Ping(ctx))
	})
}
