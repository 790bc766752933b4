// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pet-portal/models"
)

func Test_buildGetCookieQuery(t *testing.T) {
	query, args, err := buildGetCookieQuery("token")
	require.NoError(t, err)

	assert.Equal(t, []any{"token"}, args)
	q := strings.ToLower(query)
	assert.Contains(t, q, "select name, value, expires_at, updated_at")
	assert.Contains(t, q, "from cookies")
	assert.Contains(t, q, "where name = ?")
	assert.NotContains(t, query, "$1")
}

func Test_buildUpsertCookieQuery_SessionCookie(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	query, args, err := buildUpsertCookieQuery(models.Cookie{Name: "token", Value: "a.b.c"}, now)
	require.NoError(t, err)

	require.Len(t, args, 4)
	assert.Equal(t, "token", args[0])
	assert.Equal(t, "a.b.c", args[1])
	assert.Nil(t, args[2])
	assert.Equal(t, now, args[3])

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into cookies (name,value,expires_at,updated_at)")
	assert.Contains(t, q, "values (?,?,?,?)")
	assert.Contains(t, q, "on conflict(name) do update")
}

func Test_buildUpsertCookieQuery_WithExpiry(t *testing.T) {
	exp := time.Date(2026, 5, 1, 0, 0, 0, 0, time.FixedZone("X", 3600))

	_, args, err := buildUpsertCookieQuery(models.Cookie{Name: "token", Value: "v", ExpiresAt: &exp}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, exp.UTC(), args[2])
}

func Test_buildDeleteCookieQuery(t *testing.T) {
	query, args, err := buildDeleteCookieQuery("token")
	require.NoError(t, err)
	assert.Equal(t, []any{"token"}, args)
	assert.Equal(t, "DELETE FROM cookies WHERE name = ?", query)
}
