// Package server runs the HTTP server of the auth service and stops it
// gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
