// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init builds the router with every route of the vault API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5))
	router.Use(withGZipRequest)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/ready", h.ready)
		r.Get("/version", h.getServerVersion)
		r.Post("/login", h.login)

		// scripted clients authenticate with the passphrase only
		r.Post("/cli-upload", h.cliUpload)
		r.Post("/cli-download", h.cliDownload)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/logout", h.logout)
		r.Get("/me", h.me)

		r.Get("/passphrase-exists", h.passphraseExists)
		r.Post("/create-passphrase", h.createPassphrase)
		r.Post("/verify-passphrase", h.verifyPassphrase)
		r.Post("/update-passphrase", h.updatePassphrase)

		r.Get("/projects", h.listProjects)
		r.Post("/verify-project", h.verifyProject)
		r.Post("/upload", h.upload)
		r.Post("/upload-data", h.uploadData)
		r.Post("/download", h.download)
		r.Post("/download-data", h.downloadData)
		r.Delete("/delete", h.deleteProject)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
