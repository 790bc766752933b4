package config

import (
	"fmt"
	"time"
)

// ServerHTTP holds listen settings of the dev API server.
type ServerHTTP struct {
	HTTPAddress    string        `validate:"required,hostname_port"`
	RequestTimeout time.Duration `validate:"gt=0"`
}

// ServerAuth holds token issuing settings of the dev API server.
type ServerAuth struct {
	TokenSignKey  string        `validate:"required"`
	TokenIssuer   string        `validate:"required"`
	TokenDuration time.Duration `validate:"gt=0"`
}

// ServerConfig is the dev API server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	Server ServerHTTP
	Auth   ServerAuth
}

// GetServerConfig builds and validates the dev server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Auth: ServerAuth{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
	}
}
