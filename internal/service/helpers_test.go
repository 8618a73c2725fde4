// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-env-vault/internal/config"
	"github.com/MKhiriev/go-env-vault/internal/crypto"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/store"
	"github.com/MKhiriev/go-env-vault/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// faultyBackend: a store.Backend with injectable failures
// ─────────────────────────────────────────────

type faultyBackend struct {
	store.Backend

	mu     sync.Mutex
	puts   []string
	putFn  func(name string) error
	onPut  func(name string)
	getFn  func(name string) error
	listFn func() error
}

func newFaultyBackend() *faultyBackend {
	return &faultyBackend{Backend: store.NewMemoryBackend("encrypted_files", logger.Nop())}
}

func (f *faultyBackend) Put(ctx context.Context, name string, data []byte) (string, error) {
	f.mu.Lock()
	fn := f.putFn
	f.mu.Unlock()
	if fn != nil {
		if err := fn(name); err != nil {
			return "", err
		}
	}

	revision, err := f.Backend.Put(ctx, name, data)
	if err != nil {
		return "", err
	}

	f.mu.Lock()
	f.puts = append(f.puts, name)
	hook := f.onPut
	f.mu.Unlock()
	if hook != nil {
		hook(name)
	}
	return revision, nil
}

func (f *faultyBackend) Get(ctx context.Context, name string) (models.Object, error) {
	if f.getFn != nil {
		if err := f.getFn(name); err != nil {
			return models.Object{}, err
		}
	}
	return f.Backend.Get(ctx, name)
}

func (f *faultyBackend) List(ctx context.Context) ([]models.ObjectInfo, error) {
	if f.listFn != nil {
		if err := f.listFn(); err != nil {
			return nil, err
		}
	}
	return f.Backend.List(ctx)
}

// writes returns the names passed to Put since the last reset.
func (f *faultyBackend) writes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.puts...)
}

func (f *faultyBackend) resetWrites() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = nil
}

// snapshot returns the raw stored content of every object.
func (f *faultyBackend) snapshot(t *testing.T) map[string][]byte {
	t.Helper()
	ctx := context.Background()

	infos, err := f.Backend.List(ctx)
	require.NoError(t, err)

	out := make(map[string][]byte, len(infos))
	for _, info := range infos {
		obj, err := f.Backend.Get(ctx, info.Name)
		require.NoError(t, err)
		out[info.Name] = obj.Data
	}
	return out
}

// ─────────────────────────────────────────────
// fixture: verifier, items and rotator sharing one gate
// ─────────────────────────────────────────────

type vaultFixture struct {
	backend  *faultyBackend
	cipher   crypto.Cipher
	gate     *rotationGate
	verifier *passphraseVerifier
	items    *itemService
	rotator  *rotationCoordinator
}

func newVaultFixture(t *testing.T) *vaultFixture {
	t.Helper()

	backend := newFaultyBackend()
	cipher := crypto.NewCipher()
	gate := newRotationGate()
	log := logger.Nop()

	verifier := newPassphraseVerifier(backend, cipher, gate, log)
	return &vaultFixture{
		backend:  backend,
		cipher:   cipher,
		gate:     gate,
		verifier: verifier,
		items:    newItemService(backend, cipher, gate, log),
		rotator: newRotationCoordinator(backend, cipher, verifier, gate, config.Vault{
			RotationLeaseTTL: time.Minute,
			StagingWorkers:   4,
		}, log),
	}
}

// seed creates the sentinel under passphrase and stores the given projects.
func (f *vaultFixture) seed(t *testing.T, passphrase string, projects map[string]string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.verifier.CreateSentinel(ctx, passphrase))
	for name, data := range projects {
		require.NoError(t, f.items.Store(ctx, name, passphrase, []byte(data), false))
	}
	f.backend.resetWrites()
}
