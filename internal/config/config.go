// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported values of [Storage.Backend].
const (
	BackendGitHub   = "github"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// StructuredConfig is the top-level configuration container of the vault
// server and client. It is populated by merging defaults, an optional JSON
// file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the object store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Vault holds passphrase rotation settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Adapter holds the terminal client's connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds session and versioning settings.
type App struct {
	// AdminPassword is the login password of the web UI and API.
	// Env: APP_ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`

	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the session lifetime; it is also the cookie max age.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// CookieSecure sets the Secure attribute on the session cookie.
	// Env: APP_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`

	// Version is exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage selects and configures the object store.
type Storage struct {
	// Backend is one of "github", "postgres", "sqlite" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the directory (GitHub) or logical prefix holding the encrypted
	// objects.
	// Env: STORAGE_DIR
	Dir string `env:"DIR"`

	// GitHub configures the GitHub contents API backend.
	GitHub GitHub `envPrefix:"GITHUB_"`

	// DB configures the SQL backends.
	DB DB `envPrefix:"DB_"`
}

// GitHub holds the settings of the GitHub backend.
type GitHub struct {
	// Token is a personal access token with contents read/write permission.
	// Env: STORAGE_GITHUB_TOKEN
	Token string `env:"TOKEN"`

	// Repo is the "owner/name" of the repository holding the vault.
	// Env: STORAGE_GITHUB_REPO
	Repo string `env:"REPO"`

	// Branch is the branch to read and commit to. Empty means the default
	// branch of the repository.
	// Env: STORAGE_GITHUB_BRANCH
	Branch string `env:"BRANCH"`

	// APIURL is the REST API root, overridable for GitHub Enterprise.
	// Env: STORAGE_GITHUB_API_URL
	APIURL string `env:"API_URL"`

	// Timeout bounds every API call.
	// Env: STORAGE_GITHUB_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// DB holds connection settings for the SQL backends.
type DB struct {
	// DSN is the PostgreSQL connection string or the SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the CORS origins allowed to send credentials.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// MaxUploadSize limits request bodies of the upload endpoints, in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Vault holds passphrase rotation settings.
type Vault struct {
	// RotationLeaseTTL bounds how long a crashed rotation can keep the store
	// lease.
	// Env: VAULT_ROTATION_LEASE_TTL
	RotationLeaseTTL time.Duration `env:"ROTATION_LEASE_TTL"`

	// StagingWorkers is the number of items re-encrypted in parallel during
	// rotation staging.
	// Env: VAULT_STAGING_WORKERS
	StagingWorkers int `env:"STAGING_WORKERS"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthCheckInterval is the period of the store health probe.
	// Env: WORKERS_HEALTH_CHECK_INTERVAL
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// Adapter holds the terminal client's connection settings.
type Adapter struct {
	// ServerURL is the base URL of the vault HTTP API.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds every client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later sources
// override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path resolved from env and flags)
//  3. Environment variables
//  4. Command-line flags
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnvAndFlags(args).
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
