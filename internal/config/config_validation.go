// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] can start the
// server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AdminPassword == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxUploadSize <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Vault.RotationLeaseTTL <= 0 || cfg.Vault.StagingWorkers < 1 {
		return ErrInvalidVaultConfigs
	}

	if cfg.Workers.HealthCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (s Storage) validate() error {
	if strings.Trim(s.Dir, "/") == "" {
		return fmt.Errorf("%w: empty object directory", ErrInvalidStorageConfigs)
	}

	switch s.Backend {
	case BackendGitHub:
		owner, name, ok := strings.Cut(s.GitHub.Repo, "/")
		if s.GitHub.Token == "" || !ok || owner == "" || name == "" || strings.Contains(name, "/") {
			return fmt.Errorf("%w: github backend needs a token and an owner/name repository", ErrInvalidStorageConfigs)
		}
		if s.GitHub.APIURL == "" || s.GitHub.Timeout <= 0 {
			return fmt.Errorf("%w: github api url and timeout are required", ErrInvalidStorageConfigs)
		}
	case BackendPostgres, BackendSQLite:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s backend needs a DSN", ErrInvalidStorageConfigs, s.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !strings.HasPrefix(cfg.Adapter.ServerURL, "http://") && !strings.HasPrefix(cfg.Adapter.ServerURL, "https://") {
		return fmt.Errorf("%w: server url must be http or https", ErrInvalidAdapterConfigs)
	}

	return nil
}
