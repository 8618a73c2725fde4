// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/fernet/fernet-go"
	"golang.org/x/crypto/pbkdf2"
)

// Format constants of the stored blobs. Every deployment reading the same
// store must use the same values; changing any of them makes previously
// written items unreadable.
const (
	// SaltSize is the length of the random salt prefixed to every blob.
	SaltSize = 16

	// KDFIterations is the PBKDF2-HMAC-SHA256 iteration count.
	KDFIterations = 100_000

	// KeySize is the length of the derived key in bytes.
	KeySize = 32
)

// fernetCipher is the [Cipher] implementation. Keys are derived with
// PBKDF2-HMAC-SHA256 and used as fernet keys (AES-128-CBC + HMAC-SHA256).
type fernetCipher struct {
	rand io.Reader
}

// NewCipher returns the default [Cipher] reading salts from crypto/rand.
func NewCipher() Cipher {
	return &fernetCipher{rand: rand.Reader}
}

// DeriveKey stretches passphrase and salt into a KeySize-byte key.
func DeriveKey(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, KDFIterations, KeySize, sha256.New)
}

// Encrypt implements [Cipher].
func (c *fernetCipher) Encrypt(plaintext []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	token, err := fernet.EncryptAndSign(plaintext, fernetKey(passphrase, salt))
	if err != nil {
		return nil, fmt.Errorf("encrypt data: %w", err)
	}

	blob := make([]byte, 0, SaltSize+len(token))
	blob = append(blob, salt...)
	return append(blob, token...), nil
}

// Decrypt implements [Cipher].
func (c *fernetCipher) Decrypt(blob []byte, passphrase string) ([]byte, error) {
	if len(blob) <= SaltSize {
		return nil, ErrMalformedBlob
	}

	salt, token := blob[:SaltSize], blob[SaltSize:]

	// ttl 0: stored items never expire
	plaintext := fernet.VerifyAndDecrypt(token, 0, []*fernet.Key{fernetKey(passphrase, salt)})
	if plaintext == nil {
		return nil, ErrInvalidPassphrase
	}

	return plaintext, nil
}

func fernetKey(passphrase string, salt []byte) *fernet.Key {
	var key fernet.Key
	copy(key[:], DeriveKey(passphrase, salt))
	return &key
}
