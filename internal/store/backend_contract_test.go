// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runBackendContract checks the behaviour every Backend must share.
func runBackendContract(t *testing.T, newBackend func(t *testing.T) Backend) {
	t.Helper()

	t.Run("put then get returns the same bytes", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		rev1, err := b.Put(ctx, "alpha", []byte("first"))
		require.NoError(t, err)
		require.NotEmpty(t, rev1)

		obj, err := b.Get(ctx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, "alpha", obj.Name)
		assert.Equal(t, []byte("first"), obj.Data)
		assert.Equal(t, int64(len("first")), obj.Size)
		assert.Equal(t, rev1, obj.Revision)

		rev2, err := b.Put(ctx, "alpha", []byte("second version"))
		require.NoError(t, err)
		assert.NotEqual(t, rev1, rev2)

		obj, err = b.Get(ctx, "alpha")
		require.NoError(t, err)
		assert.Equal(t, []byte("second version"), obj.Data)
	})

	t.Run("get missing object", func(t *testing.T) {
		b := newBackend(t)

		_, err := b.Get(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("delete reports presence", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()
		_, err := b.Put(ctx, "alpha", []byte("x"))
		require.NoError(t, err)

		deleted, err := b.Delete(ctx, "alpha")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = b.Delete(ctx, "alpha")
		require.NoError(t, err)
		assert.False(t, deleted)

		_, err = b.Get(ctx, "alpha")
		assert.ErrorIs(t, err, ErrObjectNotFound)
	})

	t.Run("list is ordered and skips the lease", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		empty, err := b.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, empty)

		for _, name := range []string{"gamma", "alpha", "passphrase", "beta"} {
			_, err = b.Put(ctx, name, []byte(name))
			require.NoError(t, err)
		}
		require.NoError(t, b.AcquireLease(ctx, "owner", time.Minute))

		infos, err := b.List(ctx)
		require.NoError(t, err)

		names := make([]string, 0, len(infos))
		for _, info := range infos {
			names = append(names, info.Name)
			assert.Equal(t, int64(len(info.Name)), info.Size)
			assert.NotEmpty(t, info.Revision)
		}
		assert.Equal(t, []string{"alpha", "beta", "gamma", "passphrase"}, names)
	})

	t.Run("lease excludes other owners", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		require.NoError(t, b.AcquireLease(ctx, "a", time.Minute))
		assert.ErrorIs(t, b.AcquireLease(ctx, "b", time.Minute), ErrLeaseHeld)

		// re-entrant for the holder
		require.NoError(t, b.AcquireLease(ctx, "a", time.Minute))

		// releasing someone else's lease is a no-op
		require.NoError(t, b.ReleaseLease(ctx, "b"))
		assert.ErrorIs(t, b.AcquireLease(ctx, "b", time.Minute), ErrLeaseHeld)

		require.NoError(t, b.ReleaseLease(ctx, "a"))
		require.NoError(t, b.AcquireLease(ctx, "b", time.Minute))
	})

	t.Run("expired lease can be taken over", func(t *testing.T) {
		b := newBackend(t)
		ctx := context.Background()

		require.NoError(t, b.AcquireLease(ctx, "crashed", -time.Second))
		require.NoError(t, b.AcquireLease(ctx, "next", time.Minute))
		assert.ErrorIs(t, b.AcquireLease(ctx, "crashed", time.Minute), ErrLeaseHeld)
	})
}
