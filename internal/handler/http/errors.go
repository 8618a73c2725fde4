// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors returned by the request parsing helpers and the auth middleware.
// Callers can match against them with [errors.Is].
var (
	// ErrMissingAccessToken is returned by the auth middleware when the
	// request carries neither the session cookie nor an "Authorization"
	// header.
	ErrMissingAccessToken = errors.New("missing access token")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrInvalidForm = errors.New("invalid form data")
	ErrInvalidJSON = errors.New("invalid JSON was passed")
	ErrMissingFile = errors.New("file is required")
)
