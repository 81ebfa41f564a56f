package service

import "errors"

// The messages of the client-facing sentinels double as failure reasons.
var (
	ErrUserNotFound     = errors.New("no matching user")
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrNameTaken        = errors.New("name already exists")
	ErrEmailTaken       = errors.New("email already exists")
	ErrPasswordTooLong  = errors.New("password is longer than 72 bytes")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)
