// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-env-vault/models"
)

var (
	ErrInvalidPassphrase = errors.New("invalid passphrase")
	// ErrSentinelMissing means no passphrase has been set up yet.
	ErrSentinelMissing = errors.New("passphrase is not set up")
	ErrSentinelExists  = errors.New("passphrase already exists")

	ErrItemAlreadyExists  = errors.New("project already exists")
	ErrItemNotFound       = errors.New("project not found")
	ErrInvalidProjectName = errors.New("invalid project name")
	ErrEmptyPassphrase    = errors.New("passphrase is required")
	ErrEmptyData          = errors.New("data is required")

	ErrInvalidOldPassphrase = errors.New("invalid old passphrase")
	ErrRotationStaging      = errors.New("passphrase rotation aborted before any write")
	ErrRotationCommit       = errors.New("passphrase rotation failed while writing")
	ErrRotationInProgress   = errors.New("passphrase rotation already in progress")

	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrWrongPassword           = errors.New("wrong password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// RotationStagingError reports the item that could not be re-encrypted.
// The store is unchanged when it is returned.
type RotationStagingError struct {
	Name string
	Err  error
}

func (e *RotationStagingError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrRotationStaging, e.Name, e.Err)
}

// Unwrap makes both ErrRotationStaging and the cause reachable through
// errors.Is and errors.As.
func (e *RotationStagingError) Unwrap() []error {
	return []error{ErrRotationStaging, e.Err}
}

// RotationCommitError reports a rotation whose commit stopped part-way.
// Report.Rotated items are under the new passphrase, Report.Failed and
// Report.Pending are still under the old one. Running the same rotation
// again finishes it.
type RotationCommitError struct {
	Report models.RotationReport
	Err    error
}

func (e *RotationCommitError) Error() string {
	return fmt.Sprintf("%s: %s (%d rotated, %d pending): %v",
		ErrRotationCommit, e.Report.Failed, len(e.Report.Rotated), len(e.Report.Pending), e.Err)
}

func (e *RotationCommitError) Unwrap() []error {
	return []error{ErrRotationCommit, e.Err}
}
