// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationGate_ExcludesWrites(t *testing.T) {
	gate := newRotationGate()

	release := gate.excludeWrites()

	entered := make(chan struct{})
	go func() {
		done := gate.beginWrite()
		close(entered)
		done()
	}()

	select {
	case <-entered:
		t.Fatal("write entered while writes were excluded")
	case <-time.After(50 * time.Millisecond):
	}

	release()

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("write did not enter after release")
	}
}

func TestRotationGate_SingleRotation(t *testing.T) {
	gate := newRotationGate()

	done, ok := gate.tryBeginRotation()
	require.True(t, ok)

	_, ok = gate.tryBeginRotation()
	assert.False(t, ok)

	done()

	done, ok = gate.tryBeginRotation()
	require.True(t, ok)
	done()
}

func TestStore_WaitsForRunningRotation(t *testing.T) {
	f := newVaultFixture(t)
	f.seed(t, "old", map[string]string{"item1": "A=1"})

	release := f.gate.excludeWrites()

	errCh := make(chan error, 1)
	go func() {
		errCh <- f.items.Store(context.Background(), "item2", "old", []byte("B=2"), false)
	}()

	select {
	case <-errCh:
		t.Fatal("store finished while a rotation held the gate")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Empty(t, f.backend.writes())

	release()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("store did not finish after the rotation released the gate")
	}
}
