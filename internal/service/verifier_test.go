// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-env-vault/internal/crypto"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/mock"
	"github.com/MKhiriev/go-env-vault/internal/store"
	"github.com/MKhiriev/go-env-vault/internal/validators"
	"github.com/MKhiriev/go-env-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVerifyPassphrase_CorrectAndWrong(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()
	require.NoError(t, f.verifier.CreateSentinel(ctx, "correct-horse"))

	ok, err := f.verifier.VerifyPassphrase(ctx, "correct-horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.verifier.VerifyPassphrase(ctx, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassphrase_SentinelMissing(t *testing.T) {
	f := newVaultFixture(t)

	ok, err := f.verifier.VerifyPassphrase(context.Background(), "anything")

	require.ErrorIs(t, err, ErrSentinelMissing)
	assert.False(t, ok)
}

func TestVerifyPassphrase_StoreUnavailable(t *testing.T) {
	f := newVaultFixture(t)
	f.seed(t, "correct-horse", nil)
	f.backend.getFn = func(string) error {
		return fmt.Errorf("%w: connection reset", store.ErrStoreUnavailable)
	}

	_, err := f.verifier.VerifyPassphrase(context.Background(), "correct-horse")

	require.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrSentinelMissing)
}

func TestVerifyPassphrase_MalformedSentinel(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()
	_, err := f.backend.Put(ctx, validators.SentinelName, []byte("not base64!"))
	require.NoError(t, err)

	_, err = f.verifier.VerifyPassphrase(ctx, "correct-horse")

	require.ErrorIs(t, err, crypto.ErrMalformedBlob)
}

func TestVerifyPassphrase_CipherFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackend(ctrl)
	cipher := mock.NewMockCipher(ctrl)
	verifier := NewPassphraseVerifier(backend, cipher, logger.Nop())
	ctx := context.Background()

	blob := []byte("0123456789abcdef-token")
	gomock.InOrder(
		backend.EXPECT().Get(ctx, validators.SentinelName).Return(models.Object{
			Data: []byte(crypto.EncodeBlob(blob)),
		}, nil),
		cipher.EXPECT().Decrypt(blob, "pass").Return(nil, errors.New("boom")),
	)

	ok, err := verifier.VerifyPassphrase(ctx, "pass")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.False(t, ok)
}

func TestCreateSentinel(t *testing.T) {
	f := newVaultFixture(t)
	ctx := context.Background()

	exists, err := f.verifier.SentinelExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, f.verifier.CreateSentinel(ctx, "correct-horse"))

	exists, err = f.verifier.SentinelExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	obj, err := f.backend.Get(ctx, validators.SentinelName)
	require.NoError(t, err)
	blob, err := crypto.DecodeBlob(string(obj.Data))
	require.NoError(t, err)
	plaintext, err := f.cipher.Decrypt(blob, "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, SentinelContent, string(plaintext))
}

func TestCreateSentinel_Errors(t *testing.T) {
	t.Run("empty passphrase", func(t *testing.T) {
		f := newVaultFixture(t)

		err := f.verifier.CreateSentinel(context.Background(), "")

		require.ErrorIs(t, err, ErrEmptyPassphrase)
		assert.Empty(t, f.backend.writes())
	})

	t.Run("already exists", func(t *testing.T) {
		f := newVaultFixture(t)
		f.seed(t, "first", nil)

		err := f.verifier.CreateSentinel(context.Background(), "second")

		require.ErrorIs(t, err, ErrSentinelExists)
		assert.Empty(t, f.backend.writes())

		ok, err := f.verifier.VerifyPassphrase(context.Background(), "first")
		require.NoError(t, err)
		assert.True(t, ok, "existing passphrase must stay in place")
	})

	t.Run("store failure", func(t *testing.T) {
		f := newVaultFixture(t)
		f.backend.putFn = func(string) error { return store.ErrStoreAccessDenied }

		err := f.verifier.CreateSentinel(context.Background(), "pass")

		require.ErrorIs(t, err, store.ErrStoreAccessDenied)
	})
}

func TestSentinelExists_StoreFailure(t *testing.T) {
	f := newVaultFixture(t)
	f.backend.getFn = func(string) error { return store.ErrStoreUnavailable }

	_, err := f.verifier.SentinelExists(context.Background())

	require.ErrorIs(t, err, store.ErrStoreUnavailable)
}
