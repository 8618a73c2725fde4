// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-env-vault/internal/config"
	"github.com/MKhiriev/go-env-vault/internal/logger"
)

// NewBackend builds the backend selected by cfg.Backend. SQL backends are
// connected and migrated before they are returned.
func NewBackend(ctx context.Context, cfg config.Storage, log *logger.Logger) (Backend, error) {
	switch cfg.Backend {
	case config.BackendGitHub:
		return NewGitHubBackend(cfg, log)
	case config.BackendMemory:
		return NewMemoryBackend(cfg.Dir, log), nil
	case config.BackendPostgres, config.BackendSQLite:
		db, err := connect(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("error migrating %s database: %w", cfg.Backend, err)
		}
		return NewSQLBackend(db, cfg.Dir, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

func connect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	if cfg.Backend == config.BackendPostgres {
		return NewConnectPostgres(ctx, cfg.DB, log)
	}
	return NewConnectSQLite(ctx, cfg.DB, log)
}
