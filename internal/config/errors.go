package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidTokenConfigs indicates a missing sign key or issuer, or a
	// non-positive token duration.
	ErrInvalidTokenConfigs = errors.New("invalid token configuration")
	// ErrInvalidPasswordHashConfigs indicates a bcrypt cost outside
	// [bcrypt.MinCost, bcrypt.MaxCost].
	ErrInvalidPasswordHashConfigs = errors.New("invalid password hash configuration")
)
