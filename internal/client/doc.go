// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It applies the session flags (-logout, -token, -login) against the cookie
// jar and then hands the terminal over to the UI.
package client
