// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health-checked service name of the vault.
const ServiceName = "envault.Vault"

// Handler is the root gRPC transport handler. It serves the standard
// grpc.health.v1.Health service; the vault status is driven by the store
// health probe through [Handler.SetServing].
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler reporting NOT_SERVING for [ServiceName]
// until the first successful probe.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(server, h.health)
}

// SetServing switches the vault status. The overall ("") status follows it.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus(ServiceName, status)
	h.health.SetServingStatus("", status)
}

// Shutdown sets every status to NOT_SERVING and ignores later updates, so
// load balancers drain the instance before the server stops.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
