// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It owns the process lifecycle of the terminal UI: it stops the UI on
// SIGINT or SIGTERM and logs how the session ended.
package client
