// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProjectSummary is an entry of the project listing.
type ProjectSummary struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Revision string `json:"revision,omitempty"`
	URL      string `json:"url,omitempty"`

	// Sentinel marks the passphrase check item. It is always listed first and
	// is not a real project.
	Sentinel bool `json:"sentinel,omitempty"`
}
