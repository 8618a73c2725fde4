// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the vault's transport servers.
//
// It starts the HTTP API and the gRPC health server, runs the background
// workers alongside them and shuts everything down gracefully on SIGTERM,
// SIGINT or SIGQUIT.
package server
