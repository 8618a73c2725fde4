// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the configuration used for every field no other source
// sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-env-vault",
			TokenDuration: 15 * time.Minute,
			Version:       "1.0.0",
		},
		Storage: Storage{
			Backend: BackendGitHub,
			Dir:     "encrypted_files",
			GitHub: GitHub{
				APIURL:  "https://api.github.com",
				Timeout: 30 * time.Second,
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 2 * time.Minute,
			AllowedOrigins: []string{"http://localhost:3000"},
			MaxUploadSize:  1 << 20,
		},
		Vault: Vault{
			RotationLeaseTTL: 10 * time.Minute,
			StagingWorkers:   4,
		},
		Workers: Workers{
			HealthCheckInterval: 30 * time.Second,
		},
		Adapter: Adapter{
			ServerURL:      "http://localhost:8080",
			RequestTimeout: 2 * time.Minute,
		},
	}
}
