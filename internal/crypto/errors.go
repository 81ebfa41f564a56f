package crypto

import "errors"

var (
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrPasswordTooLong  = errors.New("password is longer than 72 bytes")

	ErrInvalidTokenParams = errors.New("invalid params for signing token")
	ErrInvalidToken       = errors.New("token is expired or invalid")
)
