// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-env-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "simple", input: "backend-api"},
		{name: "dots inside", input: "my.service.prod"},
		{name: "spaces and unicode", input: "проект 1"},
		{name: "max length", input: strings.Repeat("a", MaxProjectNameLength)},
		{name: "empty", input: "", wantErr: ErrEmptyProjectName},
		{name: "sentinel", input: "passphrase", wantErr: ErrReservedProjectName},
		{name: "too long", input: strings.Repeat("a", MaxProjectNameLength+1), wantErr: ErrProjectNameTooLong},
		{name: "slash", input: "a/b", wantErr: ErrProjectNameChars},
		{name: "backslash", input: `a\b`, wantErr: ErrProjectNameChars},
		{name: "nul", input: "a\x00b", wantErr: ErrProjectNameChars},
		{name: "newline", input: "a\nb", wantErr: ErrProjectNameChars},
		{name: "dot", input: ".", wantErr: ErrReservedProjectName},
		{name: "dot dot", input: "..", wantErr: ErrReservedProjectName},
		{name: "dot file", input: ".rotation", wantErr: ErrReservedProjectName},
		{name: "invalid utf8", input: "\xff\xfe", wantErr: ErrProjectNameChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePassphrase(t *testing.T) {
	assert.NoError(t, ValidatePassphrase("x"))
	assert.NoError(t, ValidatePassphrase(" "))
	assert.ErrorIs(t, ValidatePassphrase(""), ErrEmptyPassphrase)
}

func TestVaultRequestValidator_Validate(t *testing.T) {
	ctx := context.Background()
	v := NewVaultRequestValidator()
	require.NotNil(t, v)

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name: "valid upload",
			obj:  models.UploadRequest{Passphrase: "p", ProjectName: "api", Data: "KEY=1"},
		},
		{
			name:    "upload pointer without data",
			obj:     &models.UploadRequest{Passphrase: "p", ProjectName: "api"},
			wantErr: ErrEmptyData,
		},
		{
			name:   "upload scoped to name",
			obj:    models.UploadRequest{ProjectName: "api"},
			fields: []string{FieldProjectName},
		},
		{
			name:    "upload without passphrase",
			obj:     models.UploadRequest{ProjectName: "api", Data: "x"},
			wantErr: ErrEmptyPassphrase,
		},
		{
			name:    "download reserved name",
			obj:     models.DownloadRequest{Passphrase: "p", ProjectName: "passphrase"},
			wantErr: ErrReservedProjectName,
		},
		{
			name: "valid download pointer",
			obj:  &models.DownloadRequest{Passphrase: "p", ProjectName: "api"},
		},
		{
			name:    "rotate without new passphrase",
			obj:     models.RotatePassphraseRequest{OldPassphrase: "old"},
			wantErr: ErrEmptyPassphrase,
		},
		{
			name: "valid rotate",
			obj:  &models.RotatePassphraseRequest{OldPassphrase: "old", NewPassphrase: "new"},
		},
		{
			name:    "unknown field",
			obj:     models.DownloadRequest{},
			fields:  []string{"colour"},
			wantErr: ErrUnknownField,
		},
		{
			name:    "unsupported type",
			obj:     42,
			wantErr: ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
