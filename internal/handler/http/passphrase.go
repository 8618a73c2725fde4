// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-env-vault/internal/service"
	"github.com/MKhiriev/go-env-vault/internal/utils"
	"github.com/MKhiriev/go-env-vault/models"
)

func (h *Handler) passphraseExists(w http.ResponseWriter, r *http.Request) {
	exists, err := h.services.VaultService.PassphraseExists(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ExistsResponse{Exists: exists}, http.StatusOK)
}

func (h *Handler) createPassphrase(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.VaultService.CreatePassphrase(r.Context(), r.PostForm.Get("passphrase")); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: "ok", Message: "Passphrase created."}, http.StatusCreated)
}

func (h *Handler) verifyPassphrase(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.VaultService.VerifyPassphrase(r.Context(), r.PostForm.Get("passphrase")); err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: "ok", Message: "Passphrase is valid."}, http.StatusOK)
}

// updatePassphrase rotates the passphrase of every stored item. A commit
// failure is answered with the rotation report so the operator knows which
// items moved.
func (h *Handler) updatePassphrase(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}

	req := models.RotatePassphraseRequest{
		OldPassphrase: r.PostForm.Get("old_passphrase"),
		NewPassphrase: r.PostForm.Get("new_passphrase"),
	}

	report, err := h.services.VaultService.RotatePassphrase(r.Context(), req)

	var commitErr *service.RotationCommitError
	var stagingErr *service.RotationStagingError
	switch {
	case errors.As(err, &commitErr):
		status, _ := h.logError(r, err)
		_, _ = utils.WriteJSON(w, models.RotationResponse{
			Error:   service.ErrRotationCommit.Error(),
			Message: "Some files were re-encrypted. Run the same update again to finish.",
			Report:  commitErr.Report,
		}, status)
		return
	case errors.As(err, &stagingErr):
		status, _ := h.logError(r, err)
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: stagingErr.Error()}, status)
		return
	case err != nil:
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.RotationResponse{
		Status:  "ok",
		Message: "All files re-encrypted successfully.",
		Report:  report,
	}, http.StatusOK)
}
