// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-env-vault/internal/adapter"
	"github.com/MKhiriev/go-env-vault/internal/client"
	"github.com/MKhiriev/go-env-vault/internal/config"
	"github.com/MKhiriev/go-env-vault/internal/logger"
	"github.com/MKhiriev/go-env-vault/internal/tui"
	"github.com/MKhiriev/go-env-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("envault-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fatal(log, err, "error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		fatal(log, err, "create server adapter")
	}

	app, err := client.NewApp(tui.New(serverAdapter, buildInfo, log), log)
	if err != nil {
		fatal(log, err, "init client app error")
	}

	if err = app.Run(); err != nil {
		fatal(log, err, "client run error")
	}
}

// fatal logs to the client log file and, since that file is not on screen,
// repeats the message on stderr.
func fatal(log *logger.Logger, err error, msg string) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	log.Fatal().Err(err).Msg(msg)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
