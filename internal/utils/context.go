// Package utils provides general-purpose helper utilities used across the
// client and the dev API server: context keys, HTTP response writing, HTTP
// client initialization, JWT token generation and claim decoding, and ID
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// EmailCtxKey is the key under which the identity email of the target
// account is stored in a request context.
//
//	ctx := context.WithValue(ctx, utils.EmailCtxKey, "u@x.com")
var EmailCtxKey = contextKey("email")

// GetEmailFromContext retrieves the identity email from the context.
// ok is false when the value is missing, empty, or has an unexpected type.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok && email != ""
}
