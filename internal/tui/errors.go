// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-env-vault/internal/adapter"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves the program.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns adapter and network errors into a line for the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unreachable"
	}

	switch {
	case errors.Is(err, adapter.ErrSetupRequired):
		return "The vault has no passphrase yet"
	case errors.Is(err, adapter.ErrUnavailable):
		return "The storage is unavailable, try again later"
	}

	return err.Error()
}
