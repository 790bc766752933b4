// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credential is the client-held session token together with the identity
// claim decoded from it.
//
// The token is opaque to the client: its signature and expiry are enforced by
// the server only. Email is the value of the "sub" claim and is the key of
// every identity-scoped request.
type Credential struct {
	// Token is the compact JWS string as stored in the session cookie.
	Token string

	// Email is the identity claim extracted from the token payload.
	Email string
}

// Present reports whether the credential carries an identity. A zero
// Credential means "no session" and is not an error.
func (c Credential) Present() bool {
	return c.Email != ""
}
