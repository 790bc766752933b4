// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the pet portal client
// and the remote API.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped to the sentinel values in errors.go so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pet-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the pet portal API.
type ServerAdapter interface {
	// SetToken stores the session token sent as a bearer credential with
	// every subsequent request. An empty token sends no credential.
	SetToken(token string)

	// Token returns the stored session token.
	Token() string

	// Login asks the API for a session token for email and returns it. The
	// token is not stored; callers decide where it goes.
	Login(ctx context.Context, email string) (string, error)

	// CreatePet submits a new pet record and returns the record the server
	// stored. An empty response body yields the submitted record.
	CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error)

	// GetUser fetches the profile of the account identified by email.
	GetUser(ctx context.Context, email string) (models.UserProfile, error)

	// UpdateUser replaces the profile of the account identified by email and
	// returns the profile the server stored. An empty response body yields
	// the submitted profile.
	UpdateUser(ctx context.Context, email string, profile models.UserProfile) (models.UserProfile, error)
}
