// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args (without the program
// name). Unset flags leave their fields zero so they do not override lower
// priority sources.
//
// Flags:
//
//	-a, --address            HTTP server address in format [host]:[port]
//	    --grpc-address       gRPC server address in format [host]:[port]
//	-b, --backend            storage backend (github, postgres, sqlite, memory)
//	    --dir                object directory inside the store
//	    --github-token       GitHub access token
//	    --github-repo        GitHub repository "owner/name"
//	    --github-branch      GitHub branch
//	    --github-api-url     GitHub REST API root
//	-d, --dsn                database DSN
//	-c, --config             json file path with configs
//	    --admin-password     login password
//	    --token-sign-key     token signing key
//	    --token-issuer       token issuer name
//	    --token-duration     token duration (e.g., "15m")
//	    --cookie-secure      mark the session cookie Secure
//	    --request-timeout    request timeout (e.g., "30s", "1m")
//	    --allowed-origins    CORS origins, comma separated
//	    --max-upload-size    request body limit in bytes
//	    --rotation-lease-ttl rotation lease lifetime
//	    --staging-workers    parallel re-encryption workers
//	    --health-interval    store health probe period
//	-s, --server-url         vault API base URL used by the client
//	    --client-timeout     client request timeout
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	cfg := &StructuredConfig{}

	fs := pflag.NewFlagSet("envault", pflag.ContinueOnError)

	fs.VarP(&serverAddress, "address", "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVarP(&cfg.Storage.Backend, "backend", "b", "", "Storage backend: github, postgres, sqlite or memory")
	fs.StringVar(&cfg.Storage.Dir, "dir", "", "Directory holding encrypted objects")
	fs.StringVar(&cfg.Storage.GitHub.Token, "github-token", "", "GitHub access token")
	fs.StringVar(&cfg.Storage.GitHub.Repo, "github-repo", "", "GitHub repository owner/name")
	fs.StringVar(&cfg.Storage.GitHub.Branch, "github-branch", "", "GitHub branch")
	fs.StringVar(&cfg.Storage.GitHub.APIURL, "github-api-url", "", "GitHub REST API root")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Database DSN")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.App.AdminPassword, "admin-password", "", "Login password")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 15m)")
	fs.BoolVar(&cfg.App.CookieSecure, "cookie-secure", false, "Set the Secure attribute on the session cookie")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringSliceVar(&cfg.Server.AllowedOrigins, "allowed-origins", nil, "CORS allowed origins")
	fs.Int64Var(&cfg.Server.MaxUploadSize, "max-upload-size", 0, "Upload body limit in bytes")
	fs.DurationVar(&cfg.Vault.RotationLeaseTTL, "rotation-lease-ttl", 0, "Rotation lease lifetime")
	fs.IntVar(&cfg.Vault.StagingWorkers, "staging-workers", 0, "Parallel re-encryption workers")
	fs.DurationVar(&cfg.Workers.HealthCheckInterval, "health-interval", 0, "Store health probe period")
	fs.StringVarP(&cfg.Adapter.ServerURL, "server-url", "s", "", "Vault API base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "client-timeout", 0, "Client request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Otherwise the host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type names the value kind in pflag usage output.
func (a *NetAddress) Type() string {
	return "host:port"
}

var _ pflag.Value = (*NetAddress)(nil)
