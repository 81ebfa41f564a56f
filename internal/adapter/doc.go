// Package adapter is the Go client of the auth service HTTP API.
//
// The client keeps the bearer token issued by a successful sign-in and
// attaches it to authenticated requests. Failure envelopes returned with
// "400 Bad Request" are decoded into [models.Failure] so callers can match
// them with [errors.As].
package adapter
