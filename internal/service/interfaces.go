// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-env-vault/models"
)

// PassphraseVerifier checks candidate passphrases against the sentinel item.
type PassphraseVerifier interface {
	// VerifyPassphrase reports whether candidate decrypts the sentinel.
	// It returns ErrSentinelMissing when no passphrase was set up.
	VerifyPassphrase(ctx context.Context, candidate string) (bool, error)
	// SentinelExists reports whether a passphrase was set up.
	SentinelExists(ctx context.Context) (bool, error)
	// CreateSentinel sets up the passphrase. It fails with ErrSentinelExists
	// when one is already set.
	CreateSentinel(ctx context.Context, passphrase string) error
}

// ItemService encrypts projects into the object store and back.
type ItemService interface {
	Exists(ctx context.Context, name string) (bool, error)
	// Store encrypts plaintext under passphrase. Without update it fails with
	// ErrItemAlreadyExists instead of overwriting.
	Store(ctx context.Context, name, passphrase string, plaintext []byte, update bool) error
	Fetch(ctx context.Context, name, passphrase string) ([]byte, error)
	// Remove reports false when there was nothing to remove.
	Remove(ctx context.Context, name string) (bool, error)
	// ListAll returns every stored item, the sentinel first.
	ListAll(ctx context.Context) ([]models.ProjectSummary, error)
}

// writeGuard is checked after a write has entered the rotation gate.
type writeGuard func(ctx context.Context) error

// guardedWriter is implemented by item services that can run a guard
// inside their write section. The facade uses it to keep the passphrase
// check and the write on the same side of a rotation.
type guardedWriter interface {
	storeGuarded(ctx context.Context, name, passphrase string, plaintext []byte, update bool, guard writeGuard) error
	removeGuarded(ctx context.Context, name string, guard writeGuard) (bool, error)
}

// Rotator re-encrypts every stored item under a new passphrase.
type Rotator interface {
	Rotate(ctx context.Context, oldPassphrase, newPassphrase string) (models.RotationReport, error)
}

// VaultService is the operation set exposed to transports. Every operation
// touching a project verifies the passphrase first.
type VaultService interface {
	PassphraseExists(ctx context.Context) (bool, error)
	CreatePassphrase(ctx context.Context, passphrase string) error
	// VerifyPassphrase returns ErrInvalidPassphrase for a wrong passphrase.
	VerifyPassphrase(ctx context.Context, passphrase string) error

	UploadProject(ctx context.Context, req models.UploadRequest) error
	DownloadProject(ctx context.Context, req models.DownloadRequest) ([]byte, error)
	DeleteProject(ctx context.Context, req models.DownloadRequest) error
	ListProjects(ctx context.Context) ([]models.ProjectSummary, error)
	// CheckProjectAvailable returns ErrItemAlreadyExists when the name is
	// taken.
	CheckProjectAvailable(ctx context.Context, req models.DownloadRequest) error

	RotatePassphrase(ctx context.Context, req models.RotatePassphraseRequest) (models.RotationReport, error)
}

// AuthService handles the admin login of the web UI and API.
type AuthService interface {
	Login(ctx context.Context, password string) error
	CreateToken(ctx context.Context) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// CheckStore reports whether the object store can be listed.
	CheckStore(ctx context.Context) error
}
