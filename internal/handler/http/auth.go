// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/utils"
	"github.com/MKhiriev/go-env-vault/models"
)

// login checks the form "password" and sets the session cookie.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.parseForm(w, r); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.services.AuthService.Login(ctx, r.PostForm.Get("password")); err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    token.String(),
		Path:     "/",
		MaxAge:   int(h.tokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info().Msg("user logged in")
	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	_, _ = utils.WriteJSON(w, models.StatusResponse{Status: "logged out"}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	_, ok := utils.GetSubjectFromContext(r.Context())
	_, _ = utils.WriteJSON(w, models.MeResponse{IsAuthenticated: ok}, http.StatusOK)
}
