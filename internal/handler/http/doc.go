// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the vault.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API consumed by the web UI, the terminal client and CLI scripts.
// Cross-cutting concerns such as session authentication, request tracing,
// access logging, CORS and compression are handled in this package before
// requests are delegated to the service layer.
package http
