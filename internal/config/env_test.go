// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_SESSION_COOKIE": "session",
		"APP_TOKEN":          "header.payload.sig",
		"APP_LOGIN":          "ann@example.com",
		"APP_LOGOUT":         "true",
		"APP_LOG_FILE":       "/tmp/client.log",
		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",

		"STORAGE_DB_DSN": "jar.db",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_ADDRESS":         "http://api.local:8090",
		"ADAPTER_REQUEST_TIMEOUT": "5s",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "session", cfg.App.SessionCookie)
	assert.Equal(t, "header.payload.sig", cfg.App.ImportToken)
	assert.Equal(t, "ann@example.com", cfg.App.LoginEmail)
	assert.True(t, cfg.App.Logout)
	assert.Equal(t, "/tmp/client.log", cfg.App.LogFile)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)

	assert.Equal(t, "jar.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "http://api.local:8090", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "localhost:9000",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.App.SessionCookie)
	assert.False(t, cfg.App.Logout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "soon",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading pet portal env configs")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_LOGOUT": "maybe",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}
