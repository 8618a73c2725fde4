// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeBlob returns the text-safe storage form of an encrypted blob.
func EncodeBlob(blob []byte) string {
	return base64.StdEncoding.EncodeToString(blob)
}

// DecodeBlob reverses [EncodeBlob]. Surrounding whitespace, which some
// stores append to text files, is ignored.
func DecodeBlob(encoded string) ([]byte, error) {
	blob, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBlob, err)
	}

	return blob, nil
}
