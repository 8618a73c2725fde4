// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-env-vault/internal/logger"
)

// StoreHealthProbe lists the object store every interval and reports
// whether it answers. Only transitions are logged and reported.
type StoreHealthProbe struct {
	objects  Lister
	reporter StatusReporter
	interval time.Duration

	// checked is false until the first probe completes.
	checked bool
	healthy bool

	logger *logger.Logger
}

func NewStoreHealthProbe(objects Lister, reporter StatusReporter, interval time.Duration, log *logger.Logger) *StoreHealthProbe {
	return &StoreHealthProbe{
		objects:  objects,
		reporter: reporter,
		interval: interval,
		logger:   log.WithComponent("store_health_probe"),
	}
}

// Run probes once immediately, then on every tick until ctx is done.
func (p *StoreHealthProbe) Run(ctx context.Context) {
	p.probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.probe(ctx)
		}
	}
}

func (p *StoreHealthProbe) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	_, err := p.objects.List(probeCtx)
	if ctx.Err() != nil {
		// shutting down; a canceled probe says nothing about the store
		return
	}

	healthy := err == nil
	if p.checked && healthy == p.healthy {
		return
	}
	p.checked = true
	p.healthy = healthy

	if healthy {
		p.logger.Info().Msg("object store is reachable")
	} else {
		p.logger.Error().Err(err).Msg("object store is unreachable")
	}

	if p.reporter != nil {
		p.reporter.SetServing(healthy)
	}
}
