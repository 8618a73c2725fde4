// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidPassphrase is returned by [Cipher.Decrypt] when the token
	// authentication tag does not match the key derived from the passphrase.
	ErrInvalidPassphrase = errors.New("invalid passphrase")

	// ErrMalformedBlob is returned when an encrypted blob or its base64
	// storage form cannot be split into salt and token.
	ErrMalformedBlob = errors.New("malformed encrypted blob")
)
