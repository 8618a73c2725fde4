// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-env-vault/internal/utils"
	"github.com/MKhiriev/go-env-vault/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(serverVersion))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: "ok", Message: "EnvVault API is running."}, http.StatusOK)
}

// ready answers 503 while the object store cannot be listed.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.CheckStore(r.Context()); err != nil {
		_, _ = utils.WriteJSON(w, models.StatusResponse{Status: "unavailable", Message: err.Error()}, http.StatusServiceUnavailable)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK)
}
