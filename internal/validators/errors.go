// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyProjectName    = errors.New("project name is required")
	ErrReservedProjectName = errors.New("project name is reserved")
	ErrProjectNameTooLong  = errors.New("project name is too long")
	ErrProjectNameChars    = errors.New("project name contains forbidden characters")
	ErrEmptyPassphrase     = errors.New("passphrase is required")
	ErrEmptyData           = errors.New("data is required")
)
