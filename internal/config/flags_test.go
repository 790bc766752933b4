package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8090},
			expected: "localhost:8090",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:8090",
			expectedAddr: NetAddress{Host: "localhost", Port: 8090},
		},
		{
			name:         "valid ip",
			input:        "10.0.0.1:80",
			expectedAddr: NetAddress{Host: "10.0.0.1", Port: 80},
		},
		{
			name:         "empty host",
			input:        ":8080",
			expectedAddr: NetAddress{Port: 8080},
		},
		{
			name:        "missing port",
			input:       "localhost",
			expectError: true,
		},
		{
			name:        "non numeric port",
			input:       "localhost:http",
			expectError: true,
		},
		{
			name:        "port out of range",
			input:       "localhost:70000",
			expectError: true,
		},
		{
			name:        "hostname is not allowed",
			input:       "example.com:80",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags_ClientFlags(t *testing.T) {
	withArgs(t,
		"-a", "http://localhost:9000",
		"-request-timeout", "3s",
		"-d", "jar.db",
		"-cookie", "sid",
		"-token", "a.b.c",
		"-login", "ann@example.com",
		"-logout",
		"-log-file", "/tmp/c.log",
		"-c", "/etc/portal.json",
	)

	cfg, err := ParseFlags()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "jar.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sid", cfg.App.SessionCookie)
	assert.Equal(t, "a.b.c", cfg.App.ImportToken)
	assert.Equal(t, "ann@example.com", cfg.App.LoginEmail)
	assert.True(t, cfg.App.Logout)
	assert.Equal(t, "/tmp/c.log", cfg.App.LogFile)
	assert.Equal(t, "/etc/portal.json", cfg.JSONFilePath)
}

func TestParseFlags_ServerFlags(t *testing.T) {
	withArgs(t,
		"-listen", "127.0.0.1:8091",
		"-server-timeout", "1m",
		"-token-sign-key", "secret",
		"-token-issuer", "iss",
		"-token-duration", "2h",
	)

	cfg, err := ParseFlags()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8091", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "iss", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	withArgs(t, "-config", "alias.json")

	cfg, err := ParseFlags()
	require.NoError(t, err)
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	withArgs(t)

	cfg, err := ParseFlags()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidListenAddress(t *testing.T) {
	withArgs(t, "-listen", "not-an-address")

	_, err := ParseFlags()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}
