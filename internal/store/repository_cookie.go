package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pet-portal/internal/logger"
	"github.com/MKhiriev/go-pet-portal/models"
)

// cookieRepository is the SQLite-backed implementation of [CookieStore].
type cookieRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewCookieRepository constructs a [CookieStore] on top of db.
func NewCookieRepository(db *DB, logger *logger.Logger) CookieStore {
	logger.Debug().Msg("creating cookie repository")
	return &cookieRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *cookieRepository) Get(ctx context.Context, name string) (models.Cookie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCookieQuery(name)
	if err != nil {
		return models.Cookie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		cookie    models.Cookie
		expiresAt sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&cookie.Name, &cookie.Value, &expiresAt, &cookie.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Cookie{}, ErrCookieNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*cookieRepository.Get").Str("name", name).Msg("failed to read cookie")
		return models.Cookie{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if expiresAt.Valid {
		t := expiresAt.Time
		cookie.ExpiresAt = &t
	}

	if cookie.Expired(r.now()) {
		log.Debug().Str("func", "*cookieRepository.Get").Str("name", name).Msg("cookie expired")
		return models.Cookie{}, ErrCookieNotFound
	}

	return cookie, nil
}

func (r *cookieRepository) Set(ctx context.Context, cookie models.Cookie) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertCookieQuery(cookie, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*cookieRepository.Set").Str("name", cookie.Name).Msg("failed to upsert cookie")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *cookieRepository) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCookieQuery(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*cookieRepository.Delete").Str("name", name).Msg("failed to delete cookie")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
