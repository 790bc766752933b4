package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pet-portal/internal/config"
	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/internal/utils"
)

// ClientStorages groups the client-side storage: the cookie jar and the
// connection backing it.
type ClientStorages struct {
	Cookies CookieStore

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN (creating it if
// needed), applies migrations and wires the cookie jar.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Cookies: NewCookieRepository(db, logger),
		db:      db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ServerStorages groups the dev server repositories.
type ServerStorages struct {
	Users UserRepository
	Pets  PetRepository
}

// NewServerStorages wires the in-memory repositories of the dev server.
func NewServerStorages(logger *logger.Logger) *ServerStorages {
	return &ServerStorages{
		Users: NewMemoryUserRepository(logger),
		Pets:  NewMemoryPetRepository(utils.NewUUIDGenerator(), logger),
	}
}
