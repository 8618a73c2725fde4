// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/validators"
	"github.com/MKhiriev/go-env-vault/models"
)

type vaultService struct {
	verifier  PassphraseVerifier
	items     ItemService
	rotator   Rotator
	validator validators.Validator

	logger *logger.Logger
}

// NewVaultService composes the verifier, the item service and the rotator
// into a [VaultService].
func NewVaultService(verifier PassphraseVerifier, items ItemService, rotator Rotator, log *logger.Logger) VaultService {
	return &vaultService{
		verifier:  verifier,
		items:     items,
		rotator:   rotator,
		validator: validators.NewVaultRequestValidator(),
		logger:    log,
	}
}

func (v *vaultService) PassphraseExists(ctx context.Context) (bool, error) {
	return v.verifier.SentinelExists(ctx)
}

func (v *vaultService) CreatePassphrase(ctx context.Context, passphrase string) error {
	return v.verifier.CreateSentinel(ctx, passphrase)
}

func (v *vaultService) VerifyPassphrase(ctx context.Context, passphrase string) error {
	if passphrase == "" {
		return ErrEmptyPassphrase
	}

	ok, err := v.verifier.VerifyPassphrase(ctx, passphrase)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidPassphrase
	}

	return nil
}

func (v *vaultService) UploadProject(ctx context.Context, req models.UploadRequest) error {
	if err := v.validate(ctx, req, validators.FieldPassphrase, validators.FieldProjectName); err != nil {
		return err
	}

	guard := func(ctx context.Context) error {
		if err := v.VerifyPassphrase(ctx, req.Passphrase); err != nil {
			return err
		}
		return v.validate(ctx, req, validators.FieldData)
	}

	if gw, ok := v.items.(guardedWriter); ok {
		return gw.storeGuarded(ctx, req.ProjectName, req.Passphrase, []byte(req.Data), req.Update, guard)
	}
	if err := guard(ctx); err != nil {
		return err
	}
	return v.items.Store(ctx, req.ProjectName, req.Passphrase, []byte(req.Data), req.Update)
}

func (v *vaultService) DownloadProject(ctx context.Context, req models.DownloadRequest) ([]byte, error) {
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	if err := v.VerifyPassphrase(ctx, req.Passphrase); err != nil {
		return nil, err
	}

	return v.items.Fetch(ctx, req.ProjectName, req.Passphrase)
}

func (v *vaultService) DeleteProject(ctx context.Context, req models.DownloadRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}

	removed, err := v.remove(ctx, req)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%s: %w", req.ProjectName, ErrItemNotFound)
	}

	return nil
}

// remove verifies the passphrase inside the item service's write section
// when it supports one.
func (v *vaultService) remove(ctx context.Context, req models.DownloadRequest) (bool, error) {
	guard := func(ctx context.Context) error {
		return v.VerifyPassphrase(ctx, req.Passphrase)
	}

	if gw, ok := v.items.(guardedWriter); ok {
		return gw.removeGuarded(ctx, req.ProjectName, guard)
	}
	if err := guard(ctx); err != nil {
		return false, err
	}
	return v.items.Remove(ctx, req.ProjectName)
}

func (v *vaultService) ListProjects(ctx context.Context) ([]models.ProjectSummary, error) {
	return v.items.ListAll(ctx)
}

func (v *vaultService) CheckProjectAvailable(ctx context.Context, req models.DownloadRequest) error {
	if err := v.validate(ctx, req); err != nil {
		return err
	}
	if err := v.VerifyPassphrase(ctx, req.Passphrase); err != nil {
		return err
	}

	exists, err := v.items.Exists(ctx, req.ProjectName)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%s: %w", req.ProjectName, ErrItemAlreadyExists)
	}

	return nil
}

func (v *vaultService) RotatePassphrase(ctx context.Context, req models.RotatePassphraseRequest) (models.RotationReport, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.RotationReport{}, err
	}

	return v.rotator.Rotate(ctx, req.OldPassphrase, req.NewPassphrase)
}

// validate runs the request validator and translates its errors into the
// service taxonomy.
func (v *vaultService) validate(ctx context.Context, req any, fields ...string) error {
	err := v.validator.Validate(ctx, req, fields...)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrEmptyPassphrase):
		return ErrEmptyPassphrase
	case errors.Is(err, validators.ErrEmptyData):
		return ErrEmptyData
	case errors.Is(err, validators.ErrUnsupportedType), errors.Is(err, validators.ErrUnknownField):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidProjectName, err)
	}
}
