// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Client variables are
// ADAPTER_ADDRESS, STORAGE_DB_DSN, APP_SESSION_COOKIE, APP_TOKEN, APP_LOGIN
// and APP_LOG_FILE. The dev server reads SERVER_ADDRESS and the APP_TOKEN_*
// signing settings. CONFIG names an optional JSON file for either binary.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading pet portal env configs: %w", err)
	}

	return nil
}
