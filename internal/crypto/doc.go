// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the passphrase-derived encryption used for every
// object in the vault.
//
// A key is derived with PBKDF2-HMAC-SHA256 (100 000 iterations, 32 bytes)
// from the passphrase and a fresh 16-byte salt, and the payload is sealed as
// a fernet token. The salt is stored in front of the token, and the pair is
// base64-encoded before it reaches the object store. The format matches the
// one written by earlier EnvVault deployments, so existing stores stay
// readable.
package crypto
