package service

import "errors"

// Client-side errors.
var (
	// ErrMissingCredential is returned when an identity-scoped operation is
	// attempted without a session credential.
	ErrMissingCredential = errors.New("missing credential")

	// ErrInvalidCredential is returned when the stored session token cannot be
	// decoded or carries no identity claim.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrRequestFailed wraps every error returned by the remote API call.
	ErrRequestFailed = errors.New("request failed")
)

// Dev server errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidToken        = errors.New("invalid token")
)
