// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-env-vault/internal/config"
	"github.com/MKhiriev/go-env-vault/internal/crypto"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/store"
)

// Services is the service layer handed to the transports.
type Services struct {
	AuthService    AuthService
	VaultService   VaultService
	AppInfoService AppInfoService
}

// NewServices wires the vault services over one backend. The verifier, the
// item service and the rotator share a rotation gate, so uploads and
// deletes wait while a rotation runs.
func NewServices(backend store.Backend, cfg config.StructuredConfig, log *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, backend, log)
	if err != nil {
		return nil, err
	}

	cipher := crypto.NewCipher()
	gate := newRotationGate()

	verifier := newPassphraseVerifier(backend, cipher, gate, log)
	items := newItemService(backend, cipher, gate, log)
	rotator := newRotationCoordinator(backend, cipher, verifier, gate, cfg.Vault, log)

	return &Services{
		AuthService:    NewAuthService(cfg.App, log),
		VaultService:   NewVaultService(verifier, items, rotator, log),
		AppInfoService: appInfo,
	}, nil
}
