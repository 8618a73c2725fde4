// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RotationReport tells which items a passphrase rotation touched.
type RotationReport struct {
	// Rotated lists the items re-encrypted and written by this call, in
	// commit order.
	Rotated []string `json:"rotated"`

	// Skipped lists items that were already encrypted under the new
	// passphrase, left behind by an earlier interrupted rotation.
	Skipped []string `json:"skipped,omitempty"`

	// Failed is the item whose write failed. Empty on success.
	Failed string `json:"failed,omitempty"`

	// Pending lists the items that were staged but not written because the
	// commit stopped at Failed. They are still under the old passphrase.
	Pending []string `json:"pending,omitempty"`
}

// Complete reports whether every staged item was committed.
func (r RotationReport) Complete() bool {
	return r.Failed == "" && len(r.Pending) == 0
}
