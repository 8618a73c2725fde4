// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-env-vault/internal/config"
	"github.com/MKhiriev/go-env-vault/internal/handler"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/server"
	"github.com/MKhiriev/go-env-vault/internal/service"
	"github.com/MKhiriev/go-env-vault/internal/store"
	"github.com/MKhiriev/go-env-vault/internal/workers"
	"github.com/MKhiriev/go-env-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("envault-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("storage", cfg.Storage.Backend).
		Str("http", cfg.Server.HTTPAddress).
		Str("grpc", cfg.Server.GRPCAddress).
		Msg("received configs")

	backend, err := store.NewBackend(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating object store")
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Error().Err(err).Msg("error closing object store")
		}
	}()

	services, err := service.NewServices(backend, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var reporter workers.StatusReporter
	if handlers.GRPC != nil {
		reporter = handlers.GRPC
	}
	background := workers.NewWorkers(backend, reporter, cfg.Workers, log)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
