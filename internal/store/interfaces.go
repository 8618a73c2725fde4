// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-env-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ObjectStore persists named encrypted items under the configured directory.
// Names are item names; each backend maps them to "<dir>/<name>.env.enc".
type ObjectStore interface {
	// Put creates or replaces the named object and returns its new revision.
	Put(ctx context.Context, name string, data []byte) (string, error)
	// Get returns the named object or ErrObjectNotFound.
	Get(ctx context.Context, name string) (models.Object, error)
	// Delete removes the named object. It reports false when nothing was
	// there to delete.
	Delete(ctx context.Context, name string) (bool, error)
	// List returns metadata of every item in store order.
	List(ctx context.Context) ([]models.ObjectInfo, error)
}

// Locker guards multi-step operations across processes sharing a store.
type Locker interface {
	// AcquireLease takes the store lease for owner. It returns ErrLeaseHeld
	// while another owner holds an unexpired lease.
	AcquireLease(ctx context.Context, owner string, ttl time.Duration) error
	// ReleaseLease drops the lease if owner holds it.
	ReleaseLease(ctx context.Context, owner string) error
}

// Backend is a complete storage implementation.
type Backend interface {
	ObjectStore
	Locker
	// Close releases connections held by the backend.
	Close() error
}
