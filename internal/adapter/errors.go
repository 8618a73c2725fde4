// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Errors mapped from the server's HTTP statuses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("request could not be processed")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("service unavailable")
	ErrInternalServerError = errors.New("internal server error")

	// ErrSetupRequired is a 404 telling that no passphrase is set up yet.
	ErrSetupRequired = errors.New("setup required")

	// ErrRotationIncomplete is returned by RotatePassphrase when the server
	// rotated only part of the vault.
	ErrRotationIncomplete = errors.New("passphrase rotation is incomplete")
)
