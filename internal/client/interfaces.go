// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run applies the session flags and then blocks in the terminal UI until
	// the user quits or ctx is cancelled.
	Run(ctx context.Context) error
}

// UI is the interactive part of the client.
type UI interface {
	Run(ctx context.Context) error
}
