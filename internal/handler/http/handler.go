// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-env-vault/internal/config"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/service"
	"github.com/MKhiriev/go-env-vault/internal/utils"
)

// Handler holds the dependencies of the HTTP routes.
type Handler struct {
	services *service.Services

	// session cookie settings
	cookieSecure  bool
	tokenDuration time.Duration

	allowedOrigins []string
	requestTimeout time.Duration
	maxUploadSize  int64

	ids *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookieSecure:   cfg.App.CookieSecure,
		tokenDuration:  cfg.App.TokenDuration,
		allowedOrigins: cfg.Server.AllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		maxUploadSize:  cfg.Server.MaxUploadSize,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
