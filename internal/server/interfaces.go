package server

// Server is the lifecycle of the dev API that stands in for the pet portal
// backend during local runs.
type Server interface {
	// RunServer serves login, user, pet and version routes and blocks until
	// SIGINT or SIGTERM.
	RunServer()

	// Shutdown drains in-flight requests and stops listening.
	Shutdown()
}
