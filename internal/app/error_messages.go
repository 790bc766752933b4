// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// dev API server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body decodes but
	// fails basic validation (e.g. a malformed email or a pet without owner).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNoEmailProvided is returned when an identity-scoped request carries
	// no target email (query parameter or "email" header).
	MsgNoEmailProvided = "no email provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired, or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the token subject differs from the
	// account the request targets.
	MsgAccessDenied = "access denied"

	// MsgUserNotFound is returned when no account matches the email.
	MsgUserNotFound = "user not found"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"
)
