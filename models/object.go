// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ObjectInfo describes one stored object as reported by an object store
// listing. Name is the project name, not the backend path.
type ObjectInfo struct {
	// Name is the project name the object belongs to.
	Name string `json:"name"`

	// Size is the stored (encoded) size in bytes.
	Size int64 `json:"size"`

	// Revision identifies the stored version: a git blob SHA for the GitHub
	// backend, an increasing counter for the SQL and memory backends.
	Revision string `json:"revision"`

	// URL points at the object in the backend UI, when the backend has one.
	URL string `json:"url,omitempty"`
}

// Object is a stored object with its content.
type Object struct {
	ObjectInfo

	// Data is the raw stored content (base64 text of an encrypted blob).
	Data []byte `json:"-"`
}
