package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// SessionCookie is the name of the cookie holding the session token.
	SessionCookie string `validate:"required"`
	// ImportToken is a token to store into the session cookie on start.
	ImportToken string
	// LoginEmail requests a session token for this email on start.
	LoginEmail string `validate:"omitempty,email"`
	// Logout removes the session cookie on start.
	Logout bool
	// LogFile is the client log file path.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote API.
	HTTPAddress string `validate:"required"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `validate:"gt=0"`
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file backing the cookie jar. In-memory databases are
	// rejected since the session must outlive the process.
	DSN string `validate:"required,excludes=memory"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			SessionCookie: cfg.App.SessionCookie,
			ImportToken:   cfg.App.ImportToken,
			LoginEmail:    cfg.App.LoginEmail,
			Logout:        cfg.App.Logout,
			LogFile:       cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}
}
