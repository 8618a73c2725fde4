// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-env-vault/models"
)

// cliUpload is the unauthenticated upload used by scripts. It always
// replaces an existing project.
func (h *Handler) cliUpload(w http.ResponseWriter, r *http.Request) {
	h.uploadFile(w, r, true)
}

// cliDownload takes a JSON {passphrase, project_name} body and returns the
// project as an attachment.
func (h *Handler) cliDownload(w http.ResponseWriter, r *http.Request) {
	var req models.DownloadRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	data, err := h.services.VaultService.DownloadProject(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeAttachment(w, req.ProjectName, data)
}
