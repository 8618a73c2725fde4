// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the terminal client's view of the vault HTTP API.
//
// [ServerAdapter] hides the transport from the TUI. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so callers can
// use [errors.Is] (e.g. [ErrSetupRequired] for a vault without passphrase,
// [ErrUnauthorized] for an expired session).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-env-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the vault server. The session
// cookie set by Login is kept by the adapter and sent with every later
// request.
type ServerAdapter interface {
	// Login opens a session with the admin password.
	Login(ctx context.Context, password string) error

	// Logout drops the session on both sides.
	Logout(ctx context.Context) error

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	PassphraseExists(ctx context.Context) (bool, error)

	// CreatePassphrase sets up the passphrase of an empty vault.
	CreatePassphrase(ctx context.Context, passphrase string) error

	// VerifyPassphrase returns nil when passphrase opens the vault.
	VerifyPassphrase(ctx context.Context, passphrase string) error

	// ListProjects returns the stored items, the passphrase check item first.
	ListProjects(ctx context.Context) ([]models.ProjectSummary, error)

	// DownloadData returns the decrypted content of one project.
	DownloadData(ctx context.Context, req models.DownloadRequest) (string, error)

	UploadData(ctx context.Context, req models.UploadRequest) error

	DeleteProject(ctx context.Context, req models.DownloadRequest) error

	// RotatePassphrase re-encrypts the vault. On a partial failure the
	// returned report tells which projects moved and the error wraps
	// [ErrRotationIncomplete].
	RotatePassphrase(ctx context.Context, req models.RotatePassphraseRequest) (models.RotationReport, error)
}
