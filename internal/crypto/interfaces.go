// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher performs passphrase-based authenticated encryption of arbitrary
// payloads. Every stored project and the passphrase sentinel go through it.
//
// Blob layout:
//
//	salt (16 bytes) ‖ fernet token
//
// The key is never persisted: it is derived from (passphrase, salt) on every
// call and discarded when the call returns.
type Cipher interface {
	// Encrypt generates a fresh random salt, derives a key from passphrase
	// and salt and returns salt ‖ token.
	Encrypt(plaintext []byte, passphrase string) ([]byte, error)

	// Decrypt splits the salt off blob, derives the key the same way and
	// verifies and decrypts the token. Returns [ErrInvalidPassphrase] when the
	// token does not authenticate under the derived key (wrong passphrase or
	// tampered data) and [ErrMalformedBlob] when blob is too short to contain
	// a salt and a token.
	Decrypt(blob []byte, passphrase string) ([]byte, error)
}
