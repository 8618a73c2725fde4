// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-env-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldPassphrase    = "passphrase"
	FieldProjectName   = "project_name"
	FieldData          = "data"
	FieldOldPassphrase = "old_passphrase"
	FieldNewPassphrase = "new_passphrase"
)

const (
	// SentinelName is the reserved item holding the passphrase marker.
	SentinelName = "passphrase"
	// MaxProjectNameLength bounds project names, in characters.
	MaxProjectNameLength = 100
)

// VaultRequestValidator implements [Validator] for the vault request models:
// UploadRequest, DownloadRequest and RotatePassphraseRequest, in value and
// pointer form.
type VaultRequestValidator struct{}

// NewVaultRequestValidator constructs a new VaultRequestValidator and
// returns it as the Validator interface.
func NewVaultRequestValidator() Validator {
	return &VaultRequestValidator{}
}

// Validate dispatches on the dynamic type of obj. When fields is empty every
// field of the model is checked.
func (v *VaultRequestValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUpload(value, fields...)
	case *models.UploadRequest:
		return v.validateUpload(*value, fields...)

	case models.DownloadRequest:
		return v.validateDownload(value, fields...)
	case *models.DownloadRequest:
		return v.validateDownload(*value, fields...)

	case models.RotatePassphraseRequest:
		return v.validateRotate(value, fields...)
	case *models.RotatePassphraseRequest:
		return v.validateRotate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultRequestValidator) validateUpload(req models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassphrase, FieldProjectName, FieldData}
	}

	for _, f := range fields {
		switch f {
		case FieldPassphrase:
			if err := ValidatePassphrase(req.Passphrase); err != nil {
				return err
			}
		case FieldProjectName:
			if err := ValidateProjectName(req.ProjectName); err != nil {
				return err
			}
		case FieldData:
			if len(req.Data) == 0 {
				return ErrEmptyData
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultRequestValidator) validateDownload(req models.DownloadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassphrase, FieldProjectName}
	}

	for _, f := range fields {
		switch f {
		case FieldPassphrase:
			if err := ValidatePassphrase(req.Passphrase); err != nil {
				return err
			}
		case FieldProjectName:
			if err := ValidateProjectName(req.ProjectName); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultRequestValidator) validateRotate(req models.RotatePassphraseRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldPassphrase, FieldNewPassphrase}
	}

	for _, f := range fields {
		switch f {
		case FieldOldPassphrase:
			if err := ValidatePassphrase(req.OldPassphrase); err != nil {
				return err
			}
		case FieldNewPassphrase:
			if err := ValidatePassphrase(req.NewPassphrase); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateProjectName checks that name can be stored as an item on every
// backend: non-empty, not the sentinel, at most [MaxProjectNameLength]
// characters, no path separators or control characters, and not a
// dot-name.
func ValidateProjectName(name string) error {
	switch {
	case name == "":
		return ErrEmptyProjectName
	case name == SentinelName:
		return ErrReservedProjectName
	case !utf8.ValidString(name):
		return ErrProjectNameChars
	case utf8.RuneCountInString(name) > MaxProjectNameLength:
		return ErrProjectNameTooLong
	case strings.HasPrefix(name, "."):
		// also covers "." and ".."
		return ErrReservedProjectName
	case strings.ContainsFunc(name, forbiddenRune):
		return ErrProjectNameChars
	}

	return nil
}

// ValidatePassphrase rejects empty passphrases. Any other value is accepted;
// its strength is the caller's business.
func ValidatePassphrase(passphrase string) error {
	if passphrase == "" {
		return ErrEmptyPassphrase
	}

	return nil
}

func forbiddenRune(r rune) bool {
	return r == '/' || r == '\\' || unicode.IsControl(r)
}
