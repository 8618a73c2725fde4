// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-env-vault/internal/crypto"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/service"
	"github.com/MKhiriev/go-env-vault/internal/store"
	"github.com/MKhiriev/go-env-vault/internal/utils"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap maps service and store errors to HTTP statuses. It is
// ordered: rotation outcomes wrap store errors and must match first.
var errorStatusMap = []errorStatus{
	{service.ErrRotationCommit, http.StatusInternalServerError, ""},
	{service.ErrRotationStaging, http.StatusUnprocessableEntity, ""},
	{service.ErrRotationInProgress, http.StatusConflict, ""},

	{ErrMissingAccessToken, http.StatusUnauthorized, ""},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, ""},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "invalid or expired access token"},
	{service.ErrWrongPassword, http.StatusUnauthorized, "invalid password"},
	{service.ErrInvalidOldPassphrase, http.StatusUnauthorized, ""},
	{service.ErrInvalidPassphrase, http.StatusUnauthorized, ""},

	{service.ErrSentinelMissing, http.StatusNotFound, "setup required: passphrase is not set up"},
	{service.ErrSentinelExists, http.StatusConflict, ""},
	{service.ErrItemNotFound, http.StatusNotFound, ""},
	{service.ErrItemAlreadyExists, http.StatusConflict, ""},

	{service.ErrInvalidProjectName, http.StatusBadRequest, ""},
	{service.ErrEmptyPassphrase, http.StatusBadRequest, ""},
	{service.ErrEmptyData, http.StatusBadRequest, ""},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},
	{ErrInvalidForm, http.StatusBadRequest, ""},
	{ErrInvalidJSON, http.StatusBadRequest, ""},
	{ErrMissingFile, http.StatusBadRequest, ""},

	{store.ErrStoreUnavailable, http.StatusServiceUnavailable, "storage is unavailable, retry later"},
	{store.ErrStoreAccessDenied, http.StatusBadGateway, "storage rejected the vault credentials"},
	{store.ErrRevisionConflict, http.StatusConflict, "concurrent modification, retry"},
	{crypto.ErrMalformedBlob, http.StatusInternalServerError, "stored data is corrupted"},
}

// statusFromError returns the HTTP status and client message for err.
// Unknown errors are reported as 500 without details.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if !errors.Is(err, e.target) {
			continue
		}
		if e.message != "" {
			return e.status, e.message
		}
		if e.status >= http.StatusInternalServerError {
			return e.status, http.StatusText(e.status)
		}
		return e.status, e.target.Error()
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err with the request logger and writes the mapped status
// with a JSON {"error": ...} body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := h.logError(r, err)
	utils.WriteError(w, message, status)
}

// logError logs err and returns its mapped status and message.
func (h *Handler) logError(r *http.Request, err error) (int, string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Str("path", r.URL.Path).Msg("request failed")

	return status, message
}
