// Package http implements the REST transport of the auth service.
//
// It exposes route wiring, request handlers, and middleware. Tracing,
// access logging, compression and bearer authentication are handled here
// before requests are delegated to the service layer. Every JSON response
// uses the models.Response envelope.
package http
