// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-env-vault/internal/crypto"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/store"
	"github.com/MKhiriev/go-env-vault/internal/validators"
)

// SentinelContent is the plaintext of the sentinel item. Its value is never
// checked: decrypting it at all proves the passphrase.
const SentinelContent = "This is a sample passphrase file."

type passphraseVerifier struct {
	store  store.ObjectStore
	cipher crypto.Cipher
	gate   *rotationGate

	// serializes sentinel creation; the store has no create-if-absent
	createMu sync.Mutex

	logger *logger.Logger
}

func newPassphraseVerifier(objects store.ObjectStore, cipher crypto.Cipher, gate *rotationGate, log *logger.Logger) *passphraseVerifier {
	return &passphraseVerifier{
		store:  objects,
		cipher: cipher,
		gate:   gate,
		logger: log,
	}
}

// NewPassphraseVerifier constructs a [PassphraseVerifier] reading the
// sentinel from objects.
func NewPassphraseVerifier(objects store.ObjectStore, cipher crypto.Cipher, log *logger.Logger) PassphraseVerifier {
	return newPassphraseVerifier(objects, cipher, newRotationGate(), log)
}

func (v *passphraseVerifier) VerifyPassphrase(ctx context.Context, candidate string) (bool, error) {
	obj, err := v.store.Get(ctx, validators.SentinelName)
	if errors.Is(err, store.ErrObjectNotFound) {
		return false, ErrSentinelMissing
	}
	if err != nil {
		return false, fmt.Errorf("error reading passphrase sentinel: %w", err)
	}

	blob, err := crypto.DecodeBlob(string(obj.Data))
	if err != nil {
		return false, fmt.Errorf("error decoding passphrase sentinel: %w", err)
	}

	if _, err = v.cipher.Decrypt(blob, candidate); err != nil {
		if errors.Is(err, crypto.ErrInvalidPassphrase) {
			logger.FromContext(ctx).Debug().Msg("passphrase does not match sentinel")
			return false, nil
		}
		return false, fmt.Errorf("error decrypting passphrase sentinel: %w", err)
	}

	return true, nil
}

func (v *passphraseVerifier) SentinelExists(ctx context.Context) (bool, error) {
	_, err := v.store.Get(ctx, validators.SentinelName)
	switch {
	case errors.Is(err, store.ErrObjectNotFound):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("error reading passphrase sentinel: %w", err)
	}

	return true, nil
}

func (v *passphraseVerifier) CreateSentinel(ctx context.Context, passphrase string) error {
	log := logger.FromContext(ctx)

	if passphrase == "" {
		return ErrEmptyPassphrase
	}

	release := v.gate.beginWrite()
	defer release()

	v.createMu.Lock()
	defer v.createMu.Unlock()

	exists, err := v.SentinelExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return ErrSentinelExists
	}

	blob, err := v.cipher.Encrypt([]byte(SentinelContent), passphrase)
	if err != nil {
		return fmt.Errorf("error encrypting passphrase sentinel: %w", err)
	}

	if _, err = v.store.Put(ctx, validators.SentinelName, []byte(crypto.EncodeBlob(blob))); err != nil {
		log.Err(err).Msg("passphrase sentinel was not saved")
		return fmt.Errorf("error saving passphrase sentinel: %w", err)
	}

	log.Info().Msg("passphrase created")
	return nil
}
