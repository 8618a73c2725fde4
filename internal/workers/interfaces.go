// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the vault server.
package workers

import (
	"context"

	"github.com/MKhiriev/go-env-vault/models"
)

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// StatusReporter receives the outcome of the store health probe. The gRPC
// health handler implements it.
type StatusReporter interface {
	SetServing(serving bool)
}

// Lister is the part of the object store the health probe exercises.
type Lister interface {
	List(ctx context.Context) ([]models.ObjectInfo, error)
}
