package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the bearer token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrUnexpectedStatus is returned for any status the API does not document.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrNoToken is returned when the sign-in response carries no bearer token.
	ErrNoToken = errors.New("no bearer token in response")

	ErrEmptyAddress   = errors.New("empty address")
	ErrInvalidAddress = errors.New("address must include host and scheme")
)
