// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-env-vault/internal/crypto"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/mock"
	"github.com/MKhiriev/go-env-vault/internal/store"
	"github.com/MKhiriev/go-env-vault/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestItemService_StoreWithoutUpdate_AlreadyExists(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	require.NoError(t, f.items.Store(ctx, "proj1", "p1", []byte("SECRET=1"), false))

	err := f.items.Store(ctx, "proj1", "p1", []byte("SECRET=2"), false)
	require.ErrorIs(t, err, ErrItemAlreadyExists)

	got, err := f.items.Fetch(ctx, "proj1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "SECRET=1", string(got))

	require.NoError(t, f.items.Store(ctx, "proj1", "p1", []byte("SECRET=2"), true))

	got, err = f.items.Fetch(ctx, "proj1", "p1")
	require.NoError(t, err)
	assert.Equal(t, "SECRET=2", string(got))
}

func TestItemService_StoredForm(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	require.NoError(t, f.items.Store(ctx, "proj1", "p1", []byte("SECRET=1"), false))

	obj, err := f.backend.Get(ctx, "proj1")
	require.NoError(t, err)

	blob, err := crypto.DecodeBlob(string(obj.Data))
	require.NoError(t, err, "stored content must be base64 text")
	require.Greater(t, len(blob), crypto.SaltSize)

	plaintext, err := crypto.NewCipher().Decrypt(blob, "p1")
	require.NoError(t, err)
	assert.Equal(t, "SECRET=1", string(plaintext))
}

func TestItemService_InvalidNames(t *testing.T) {
	names := []string{"", validators.SentinelName, "a/b", ".hidden", strings.Repeat("x", validators.MaxProjectNameLength+1)}

	f := newVaultFixture(t)
	ctx := context.Background()

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			err := f.items.Store(ctx, name, "p1", []byte("X=1"), true)
			require.ErrorIs(t, err, ErrInvalidProjectName)

			_, err = f.items.Fetch(ctx, name, "p1")
			require.ErrorIs(t, err, ErrInvalidProjectName)

			_, err = f.items.Remove(ctx, name)
			require.ErrorIs(t, err, ErrInvalidProjectName)
		})
	}

	assert.Empty(t, f.backend.writes())
}

func TestItemService_Store_EmptyPassphrase(t *testing.T) {
	f := newVaultFixture(t)

	err := f.items.Store(context.Background(), "proj1", "", []byte("X=1"), false)

	require.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestItemService_Store_StoreFailure(t *testing.T) {
	f := newVaultFixture(t)
	f.backend.putFn = func(string) error { return store.ErrStoreUnavailable }

	err := f.items.Store(context.Background(), "proj1", "p1", []byte("X=1"), true)

	require.ErrorIs(t, err, store.ErrStoreUnavailable)
}

func TestItemService_Store_UpdateSkipsExistenceCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)
	items := NewItemService(backend, crypto.NewCipher(), logger.Nop())
	ctx := context.Background()

	backend.EXPECT().List(gomock.Any()).Times(0)
	backend.EXPECT().Put(ctx, "proj1", gomock.Any()).Return("7", nil)

	require.NoError(t, items.Store(ctx, "proj1", "p1", []byte("X=1"), true))
}

func TestItemService_Fetch_Errors(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()
	require.NoError(t, f.items.Store(ctx, "proj1", "p1", []byte("X=1"), false))

	_, err := f.items.Fetch(ctx, "missing", "p1")
	require.ErrorIs(t, err, ErrItemNotFound)

	_, err = f.items.Fetch(ctx, "proj1", "wrong")
	require.ErrorIs(t, err, ErrInvalidPassphrase)

	f.backend.getFn = func(string) error { return store.ErrStoreUnavailable }
	_, err = f.items.Fetch(ctx, "proj1", "p1")
	require.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrItemNotFound)
}

func TestItemService_Remove(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	removed, err := f.items.Remove(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, f.items.Store(ctx, "proj1", "p1", []byte("X=1"), false))

	removed, err = f.items.Remove(ctx, "proj1")
	require.NoError(t, err)
	assert.True(t, removed)

	exists, err := f.items.Exists(ctx, "proj1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestItemService_ListAll_SentinelFirst(t *testing.T) {
	f := newVaultFixture(t)
	f.seed(t, "p1", map[string]string{"alpha": "A=1", "zeta": "Z=1", "qa": "Q=1"})

	summaries, err := f.items.ListAll(context.Background())
	require.NoError(t, err)

	require.Len(t, summaries, 4)
	assert.Equal(t, validators.SentinelName, summaries[0].Name)
	assert.True(t, summaries[0].Sentinel)

	var rest []string
	for _, s := range summaries[1:] {
		assert.False(t, s.Sentinel)
		assert.Positive(t, s.Size)
		rest = append(rest, s.Name)
	}
	assert.Equal(t, []string{"alpha", "qa", "zeta"}, rest)
}

func TestItemService_ListAll_NoSentinel(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()
	require.NoError(t, f.items.Store(ctx, "proj1", "p1", []byte("X=1"), false))

	summaries, err := f.items.ListAll(ctx)
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	assert.Equal(t, "proj1", summaries[0].Name)
	assert.False(t, summaries[0].Sentinel)
}

func TestItemService_Exists_StoreFailure(t *testing.T) {
	f := newVaultFixture(t)
	f.backend.listFn = func() error { return store.ErrStoreUnavailable }

	_, err := f.items.Exists(context.Background(), "proj1")
	require.ErrorIs(t, err, store.ErrStoreUnavailable)

	_, err = f.items.ListAll(context.Background())
	require.ErrorIs(t, err, store.ErrStoreUnavailable)
}
