// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualHMAC(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "equal", a: "s3cret", b: "s3cret", want: true},
		{name: "different", a: "s3cret", b: "s3cres", want: false},
		{name: "prefix", a: "s3cret", b: "s3c", want: false},
		{name: "empty vs value", a: "", b: "x", want: false},
		{name: "both empty", a: "", b: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EqualHMAC(tt.a, tt.b, "key"))
		})
	}
}
