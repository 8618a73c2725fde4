// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-env-vault/internal/crypto"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/store"
	"github.com/MKhiriev/go-env-vault/internal/validators"
	"github.com/MKhiriev/go-env-vault/models"
)

// itemService stores projects as base64 encrypted blobs. It holds no state
// of its own; every call goes to the store.
type itemService struct {
	store  store.ObjectStore
	cipher crypto.Cipher
	gate   *rotationGate

	logger *logger.Logger
}

func newItemService(objects store.ObjectStore, cipher crypto.Cipher, gate *rotationGate, log *logger.Logger) *itemService {
	return &itemService{
		store:  objects,
		cipher: cipher,
		gate:   gate,
		logger: log,
	}
}

// NewItemService constructs an [ItemService] over objects.
func NewItemService(objects store.ObjectStore, cipher crypto.Cipher, log *logger.Logger) ItemService {
	return newItemService(objects, cipher, newRotationGate(), log)
}

func (s *itemService) Exists(ctx context.Context, name string) (bool, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return false, fmt.Errorf("error listing projects: %w", err)
	}

	for _, item := range items {
		if item.Name == name {
			return true, nil
		}
	}

	return false, nil
}

func (s *itemService) Store(ctx context.Context, name, passphrase string, plaintext []byte, update bool) error {
	return s.storeGuarded(ctx, name, passphrase, plaintext, update, nil)
}

// storeGuarded runs guard inside the write section, so a rotation cannot
// land between the guard and the write.
func (s *itemService) storeGuarded(ctx context.Context, name, passphrase string, plaintext []byte, update bool, guard writeGuard) error {
	log := logger.FromContext(ctx)

	if err := validators.ValidateProjectName(name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProjectName, err)
	}
	if passphrase == "" {
		return ErrEmptyPassphrase
	}

	release := s.gate.beginWrite()
	defer release()

	if guard != nil {
		if err := guard(ctx); err != nil {
			return err
		}
	}

	if !update {
		exists, err := s.Exists(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%s: %w", name, ErrItemAlreadyExists)
		}
	}

	blob, err := s.cipher.Encrypt(plaintext, passphrase)
	if err != nil {
		return fmt.Errorf("error encrypting project %s: %w", name, err)
	}

	revision, err := s.store.Put(ctx, name, []byte(crypto.EncodeBlob(blob)))
	if err != nil {
		log.Err(err).Str("project", name).Msg("project was not saved")
		return fmt.Errorf("error saving project %s: %w", name, err)
	}

	log.Info().Str("project", name).Str("revision", revision).Bool("update", update).Msg("project saved")
	return nil
}

func (s *itemService) Fetch(ctx context.Context, name, passphrase string) ([]byte, error) {
	if err := validators.ValidateProjectName(name); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProjectName, err)
	}

	obj, err := s.store.Get(ctx, name)
	if errors.Is(err, store.ErrObjectNotFound) {
		return nil, fmt.Errorf("%s: %w", name, ErrItemNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading project %s: %w", name, err)
	}

	blob, err := crypto.DecodeBlob(string(obj.Data))
	if err != nil {
		return nil, fmt.Errorf("error decoding project %s: %w", name, err)
	}

	plaintext, err := s.cipher.Decrypt(blob, passphrase)
	if errors.Is(err, crypto.ErrInvalidPassphrase) {
		return nil, fmt.Errorf("%s: %w", name, ErrInvalidPassphrase)
	}
	if err != nil {
		return nil, fmt.Errorf("error decrypting project %s: %w", name, err)
	}

	return plaintext, nil
}

func (s *itemService) Remove(ctx context.Context, name string) (bool, error) {
	return s.removeGuarded(ctx, name, nil)
}

func (s *itemService) removeGuarded(ctx context.Context, name string, guard writeGuard) (bool, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateProjectName(name); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidProjectName, err)
	}

	release := s.gate.beginWrite()
	defer release()

	if guard != nil {
		if err := guard(ctx); err != nil {
			return false, err
		}
	}

	removed, err := s.store.Delete(ctx, name)
	if err != nil {
		return false, fmt.Errorf("error deleting project %s: %w", name, err)
	}

	log.Info().Str("project", name).Bool("removed", removed).Msg("project delete handled")
	return removed, nil
}

func (s *itemService) ListAll(ctx context.Context) ([]models.ProjectSummary, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing projects: %w", err)
	}

	summaries := make([]models.ProjectSummary, 0, len(items))
	for _, item := range items {
		summary := models.ProjectSummary{
			Name:     item.Name,
			Size:     item.Size,
			Revision: item.Revision,
			URL:      item.URL,
		}
		if item.Name == validators.SentinelName {
			summary.Sentinel = true
			summaries = append([]models.ProjectSummary{summary}, summaries...)
			continue
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}
