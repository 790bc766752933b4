package adapter

import "errors"

// Sentinel errors mapped from HTTP response status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// ErrEmptyIdentity is returned when an identity-scoped call is made without
// an email.
var ErrEmptyIdentity = errors.New("empty identity")
