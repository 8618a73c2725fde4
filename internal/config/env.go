// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// fileSuffix marks a variable whose value is the path of a file holding the
// value of the variable without the suffix, e.g. APP_ADMIN_PASSWORD_FILE.
const fileSuffix = "_FILE"

// filePrefixes limits file resolution to the config groups so unrelated
// variables of the process environment are left alone.
var filePrefixes = []string{"APP_", "STORAGE_", "SERVER_", "VAULT_", "WORKERS_", "ADAPTER_"}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Secrets may be mounted as files: NAME_FILE=/run/secrets/x sets NAME to the
// file content unless NAME itself is set.
func parseEnv(cfg any) error {
	environ, err := resolveFileVars(env.ToMap(os.Environ()))
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if err = env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func resolveFileVars(environ map[string]string) (map[string]string, error) {
	resolved := make(map[string]string, len(environ))
	for k, v := range environ {
		resolved[k] = v
	}

	for k, path := range environ {
		name, ok := strings.CutSuffix(k, fileSuffix)
		if !ok || path == "" || !hasConfigPrefix(name) {
			continue
		}
		if _, set := environ[name]; set {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", k, err)
		}
		resolved[name] = strings.TrimRight(string(data), "\r\n")
	}

	return resolved, nil
}

func hasConfigPrefix(name string) bool {
	for _, p := range filePrefixes {
		if strings.HasPrefix(name, p) && len(name) > len(p) {
			return true
		}
	}
	return false
}
