// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-env-vault/internal/config"
	"github.com/MKhiriev/go-env-vault/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the server's background jobs. reporter may be nil when
// the gRPC transport is disabled; the probe then only logs.
func NewWorkers(objects Lister, reporter StatusReporter, cfg config.Workers, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewStoreHealthProbe(objects, reporter, cfg.HealthCheckInterval, log),
		},
		logger: log,
	}
}

// Run starts every worker in its own goroutine and waits until all of them
// return, which they do once ctx is done.
func (w *Workers) Run(ctx context.Context) {
	w.logger.Info().Int("workers", len(w.workers)).Msg("starting workers")

	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()

	w.logger.Info().Msg("workers stopped")
}
