// Package http implements the HTTP transport of the dev API server.
//
// It exposes route wiring, request handlers, and middleware for the pet
// portal API: login, get-user, update-user and add-pet. Cross-cutting
// concerns such as bearer authentication, request tracing, and access
// logging are handled in this package before requests are delegated to the
// service layer.
package http
