package server

// Server defines the lifecycle contract of the transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns an error when the server could not serve at all.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
