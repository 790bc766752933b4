// Package server runs the dev API server.
//
// It wraps the HTTP handler in an [http.Server] with the configured request
// timeout and handles startup, signal handling, and graceful shutdown.
package server
