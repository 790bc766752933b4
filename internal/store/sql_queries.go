// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pet-portal/models"
)

const cookiesTable = "cookies"

// SQLite takes "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetCookieQuery(name string) (string, []any, error) {
	return psql.
		Select("name", "value", "expires_at", "updated_at").
		From(cookiesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildUpsertCookieQuery(cookie models.Cookie, now time.Time) (string, []any, error) {
	var expiresAt any
	if cookie.ExpiresAt != nil {
		expiresAt = cookie.ExpiresAt.UTC()
	}

	return psql.
		Insert(cookiesTable).
		Columns("name", "value", "expires_at", "updated_at").
		Values(cookie.Name, cookie.Value, expiresAt, now.UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteCookieQuery(name string) (string, []any, error) {
	return psql.
		Delete(cookiesTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}
