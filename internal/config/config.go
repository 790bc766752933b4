// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session and token settings shared by client and server.
	App App `envPrefix:"APP_"`

	// Storage holds the client's local cookie jar database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the dev API server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote API address used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// SessionCookie is the name of the cookie that holds the session token.
	// Env: APP_SESSION_COOKIE
	SessionCookie string `env:"SESSION_COOKIE"`

	// ImportToken, when set, is stored into the session cookie before the
	// client starts. It is how a token obtained elsewhere reaches the client.
	// Env: APP_TOKEN
	ImportToken string `env:"TOKEN"`

	// LoginEmail, when set, makes the client request a session token for this
	// email from the API and store it before start.
	// Env: APP_LOGIN
	LoginEmail string `env:"LOGIN"`

	// Logout removes the session cookie before the client starts.
	// Env: APP_LOGOUT
	Logout bool `env:"LOGOUT"`

	// LogFile is the path of the client log file. Empty means "logs" next to
	// the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// TokenSignKey is the secret key the dev server signs session tokens with.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an issued token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Storage groups the configuration for the client's local storage.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite cookie jar.
type DB struct {
	// DSN is the SQLite database file path (e.g. "pet-portal.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings of the dev API server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading and writing a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote API settings used by the client.
type Adapter struct {
	// HTTPAddress is the base URL of the remote API. The scheme is optional
	// and defaults to http (e.g. "localhost:8090").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults used when no source sets a value.
const (
	DefaultSessionCookie         = "token"
	DefaultTokenIssuer           = "pet-portal"
	DefaultTokenDuration         = 24 * time.Hour
	DefaultAdapterAddress        = "http://localhost:8090"
	DefaultAdapterRequestTimeout = 15 * time.Second
	DefaultClientDSN             = "pet-portal.db"
	DefaultServerAddress         = "localhost:8090"
	DefaultServerRequestTimeout  = 30 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionCookie: DefaultSessionCookie,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{DB: DB{DSN: DefaultClientDSN}},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Returns an error if any source fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
