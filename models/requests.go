// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadRequest carries a project upload.
type UploadRequest struct {
	Passphrase  string `json:"passphrase"`
	ProjectName string `json:"project_name"`
	Data        string `json:"data"`

	// Update allows replacing an existing project. Without it an upload of
	// an existing name fails.
	Update bool `json:"update"`
}

// DownloadRequest identifies a project together with the passphrase that
// unlocks it. It is also used for deletion and name checks.
type DownloadRequest struct {
	Passphrase  string `json:"passphrase"`
	ProjectName string `json:"project_name"`
}

// RotatePassphraseRequest asks to re-encrypt every stored item.
type RotatePassphraseRequest struct {
	OldPassphrase string `json:"old_passphrase"`
	NewPassphrase string `json:"new_passphrase"`
}
