// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-env-vault/internal/utils"
)

// accessTokenCookie is the session cookie set by /login.
const accessTokenCookie = "access_token"

// auth is an HTTP middleware that enforces session authentication.
//
// The token is read from the access_token cookie set by /login. Clients
// that cannot keep cookies may send it as "Authorization: Bearer <token>"
// instead. On success the token subject is stored in the request context
// under [utils.SubjectCtxKey].
//
// Requests without a token or with an invalid or expired token are
// rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSubject(ctx, token.Subject)))
	})
}

// tokenFromRequest prefers the session cookie over the Authorization
// header.
func tokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(accessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingAccessToken
	}

	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	return token, nil
}
