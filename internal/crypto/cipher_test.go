// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pythonBlob was written by the Python service format: base64 of a 16 byte
// salt followed by a Fernet token keyed with urlsafe base64 of
// PBKDF2-HMAC-SHA256(passphrase, salt, 100000, 32). Salt, IV and timestamp
// are fixed.
const pythonBlob = "AAECAwQFBgcICQoLDA0OD2dBQUFBQUJsVV9FQUVCRVNFeFFWRmhjWUdSb2JIQjBlSDhaaEpOUk10S0hpLVJ2dEZIdmptdm9uV011dEJwbGEtMFM0UElEM0RsTm53aWJyVDdrTlI1TXNzTjd3MmhKTkZyTlR2a2QxajYxZnlwTkhENm9GM3E0PQ=="

func TestCipher_Decrypt_PythonBlob(t *testing.T) {
	c := NewCipher()

	blob, err := DecodeBlob(pythonBlob)
	require.NoError(t, err)
	require.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, blob[:SaltSize])

	tests := []struct {
		name       string
		passphrase string
		want       []byte
		wantErr    error
	}{
		{name: "matching passphrase", passphrase: "correct-horse", want: []byte("SECRET=1\nAPI_KEY=abc\n")},
		{name: "wrong passphrase", passphrase: "battery-staple", wantErr: ErrInvalidPassphrase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Decrypt(blob, tt.passphrase)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCipher_EncryptDecrypt_RoundTrip(t *testing.T) {
	c := NewCipher()

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{name: "env file", plaintext: []byte("SECRET=1\nAPI_KEY=abc\n")},
		{name: "empty payload", plaintext: []byte{}},
		{name: "binary payload", plaintext: []byte{0x00, 0xff, 0x10, 0x80}},
		{name: "unicode", plaintext: []byte("ПАРОЛЬ=секрет")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := c.Encrypt(tt.plaintext, "correct-horse")
			require.NoError(t, err)

			got, err := c.Decrypt(blob, "correct-horse")
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tt.plaintext, got))
		})
	}
}

func TestCipher_Decrypt_WrongPassphrase(t *testing.T) {
	c := NewCipher()

	blob, err := c.Encrypt([]byte("SECRET=1"), "k1")
	require.NoError(t, err)

	got, err := c.Decrypt(blob, "k2")
	assert.ErrorIs(t, err, ErrInvalidPassphrase)
	assert.Nil(t, got)
}

func TestCipher_Decrypt_TamperedToken(t *testing.T) {
	c := NewCipher()

	blob, err := c.Encrypt([]byte("SECRET=1"), "k1")
	require.NoError(t, err)

	// flip a character inside the token body
	tampered := append([]byte(nil), blob...)
	i := len(tampered) - 10
	if tampered[i] == 'A' {
		tampered[i] = 'B'
	} else {
		tampered[i] = 'A'
	}

	_, err = c.Decrypt(tampered, "k1")
	assert.ErrorIs(t, err, ErrInvalidPassphrase)
}

func TestCipher_Decrypt_TamperedSalt(t *testing.T) {
	c := NewCipher()

	blob, err := c.Encrypt([]byte("SECRET=1"), "k1")
	require.NoError(t, err)

	blob[0] ^= 0xff

	_, err = c.Decrypt(blob, "k1")
	assert.ErrorIs(t, err, ErrInvalidPassphrase)
}

func TestCipher_Decrypt_Malformed(t *testing.T) {
	c := NewCipher()

	for _, blob := range [][]byte{nil, {}, bytes.Repeat([]byte{1}, SaltSize)} {
		_, err := c.Decrypt(blob, "k1")
		assert.ErrorIs(t, err, ErrMalformedBlob)
	}
}

func TestCipher_Encrypt_SaltIsUnique(t *testing.T) {
	c := NewCipher()

	b1, err := c.Encrypt([]byte("SECRET=1"), "k1")
	require.NoError(t, err)
	b2, err := c.Encrypt([]byte("SECRET=1"), "k1")
	require.NoError(t, err)

	assert.NotEqual(t, b1[:SaltSize], b2[:SaltSize])
	assert.NotEqual(t, b1, b2)
}

func TestCipher_Encrypt_Layout(t *testing.T) {
	c := NewCipher()

	blob, err := c.Encrypt([]byte("SECRET=1"), "k1")
	require.NoError(t, err)

	require.Greater(t, len(blob), SaltSize)
	// fernet tokens start with version byte 0x80, "gA" in base64url
	assert.True(t, strings.HasPrefix(string(blob[SaltSize:]), "gA"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestCipher_Encrypt_RandomFailure(t *testing.T) {
	c := &fernetCipher{rand: failingReader{}}

	_, err := c.Encrypt([]byte("SECRET=1"), "k1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate salt")
}

func TestDeriveKey(t *testing.T) {
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	k1 := DeriveKey("pass", salt1)
	k2 := DeriveKey("pass", salt1)
	k3 := DeriveKey("pass", salt2)
	k4 := DeriveKey("other", salt1)

	assert.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.NotEqual(t, k1, k4)
}

func TestBlobCodec(t *testing.T) {
	blob := []byte{0, 1, 2, 3, 250, 251}

	encoded := EncodeBlob(blob)
	decoded, err := DecodeBlob(encoded + "\n")
	require.NoError(t, err)
	assert.Equal(t, blob, decoded)

	_, err = DecodeBlob("%%%not-base64%%%")
	assert.ErrorIs(t, err, ErrMalformedBlob)
}
