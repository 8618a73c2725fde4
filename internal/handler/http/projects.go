// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-env-vault/internal/utils"
	"github.com/MKhiriev/go-env-vault/models"
)

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.VaultService.ListProjects(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, projects, http.StatusOK)
}

// verifyProject checks the passphrase and that the project name is free.
func (h *Handler) verifyProject(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}

	req := downloadRequestFromForm(r)
	if err := h.services.VaultService.CheckProjectAvailable(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{
		Status:      "ok",
		Message:     "Project name is free and passphrase is valid.",
		ProjectName: req.ProjectName,
	}, http.StatusOK)
}

// upload stores a multipart "file" as a new project.
func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	h.uploadFile(w, r, false)
}

func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request, update bool) {
	if err := h.parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}

	data, err := readFormFile(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	req := models.UploadRequest{
		Passphrase:  r.PostForm.Get("passphrase"),
		ProjectName: r.PostForm.Get("project_name"),
		Data:        string(data),
		Update:      update,
	}
	if err = h.services.VaultService.UploadProject(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: "ok", ProjectName: req.ProjectName}, http.StatusOK)
}

func (h *Handler) uploadData(w http.ResponseWriter, r *http.Request) {
	var req models.UploadRequest
	if err := h.decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.VaultService.UploadProject(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: "ok", ProjectName: req.ProjectName}, http.StatusOK)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}

	req := downloadRequestFromForm(r)
	data, err := h.services.VaultService.DownloadProject(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeAttachment(w, req.ProjectName, data)
}

func (h *Handler) downloadData(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}

	req := downloadRequestFromForm(r)
	data, err := h.services.VaultService.DownloadProject(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{
		Status:      "ok",
		ProjectName: req.ProjectName,
		Data:        string(data),
	}, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}

	req := downloadRequestFromForm(r)
	if err := h.services.VaultService.DeleteProject(r.Context(), req); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: "ok", ProjectName: req.ProjectName}, http.StatusOK)
}
