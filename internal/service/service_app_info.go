// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-env-vault/internal/config"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/store"
)

type appInfoService struct {
	appVersion string
	objects    store.ObjectStore

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, objects store.ObjectStore, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		objects:    objects,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// CheckStore lists the vault directory once. A nil result means the object
// store answers and the credentials are accepted.
func (s *appInfoService) CheckStore(ctx context.Context) error {
	if _, err := s.objects.List(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("object store is not ready")
		return fmt.Errorf("list objects: %w", err)
	}

	return nil
}
