// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/models"
)

type memoryObject struct {
	data     []byte
	revision int64
}

type memoryLease struct {
	owner     string
	expiresAt time.Time
}

// memoryBackend keeps objects in a map. Listing is sorted by name, matching
// the GitHub directory order.
type memoryBackend struct {
	mu       sync.Mutex
	dir      string
	objects  map[string]memoryObject
	revision int64
	lease    *memoryLease
	now      func() time.Time
	logger   *logger.Logger
}

// NewMemoryBackend constructs an in-process [Backend]. State is lost when
// the process exits.
func NewMemoryBackend(dir string, log *logger.Logger) Backend {
	log.Debug().Msg("creating memory backend")
	return &memoryBackend{
		dir:     dir,
		objects: make(map[string]memoryObject),
		now:     time.Now,
		logger:  log,
	}
}

func (m *memoryBackend) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.revision++
	m.objects[name] = memoryObject{data: bytes.Clone(data), revision: m.revision}

	return strconv.FormatInt(m.revision, 10), nil
}

func (m *memoryBackend) Get(ctx context.Context, name string) (models.Object, error) {
	if err := ctx.Err(); err != nil {
		return models.Object{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	obj, ok := m.objects[name]
	if !ok {
		return models.Object{}, fmt.Errorf("%s: %w", ObjectPath(m.dir, name), ErrObjectNotFound)
	}

	return models.Object{
		ObjectInfo: m.info(name, obj),
		Data:       bytes.Clone(obj.data),
	}, nil
}

func (m *memoryBackend) Delete(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.objects[name]; !ok {
		return false, nil
	}
	delete(m.objects, name)

	return true, nil
}

func (m *memoryBackend) List(ctx context.Context) ([]models.ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.objects))
	for name := range m.objects {
		names = append(names, name)
	}
	slices.Sort(names)

	infos := make([]models.ObjectInfo, 0, len(names))
	for _, name := range names {
		infos = append(infos, m.info(name, m.objects[name]))
	}

	return infos, nil
}

func (m *memoryBackend) AcquireLease(ctx context.Context, owner string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if m.lease != nil && m.lease.owner != owner && now.Before(m.lease.expiresAt) {
		return ErrLeaseHeld
	}
	m.lease = &memoryLease{owner: owner, expiresAt: now.Add(ttl)}

	return nil
}

func (m *memoryBackend) ReleaseLease(_ context.Context, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lease != nil && m.lease.owner == owner {
		m.lease = nil
	}

	return nil
}

func (m *memoryBackend) Close() error {
	return nil
}

func (m *memoryBackend) info(name string, obj memoryObject) models.ObjectInfo {
	return models.ObjectInfo{
		Name:     name,
		Size:     int64(len(obj.data)),
		Revision: strconv.FormatInt(obj.revision, 10),
	}
}
