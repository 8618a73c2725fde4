// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
)

// EqualHMAC reports whether a and b are equal, comparing their HMACs under
// key in constant time so that neither length nor content leaks through
// timing.
func EqualHMAC(a, b, key string) bool {
	return hmac.Equal(hashBytes([]byte(a), key), hashBytes([]byte(b), key))
}

func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
