// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusResponse is the generic success body of the HTTP API.
type StatusResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	ProjectName string `json:"project_name,omitempty"`
	Data        string `json:"data,omitempty"`
}

// ErrorResponse is the generic error body of the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ExistsResponse answers the passphrase-exists query.
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

// MeResponse answers the session check.
type MeResponse struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

// RotationResponse is returned by the passphrase update endpoint, both on
// success and when the commit phase failed part-way.
type RotationResponse struct {
	Status  string         `json:"status,omitempty"`
	Error   string         `json:"error,omitempty"`
	Message string         `json:"message,omitempty"`
	Report  RotationReport `json:"report"`
}
