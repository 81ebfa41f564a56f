// Package utils provides general-purpose helpers used across the
// application: typed context keys, JSON response writing, the HTTP client
// and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClaimsCtxKey is the key under which the auth middleware stores the
// verified [models.TokenClaims] of the caller.
//
//	ctx := context.WithValue(ctx, utils.ClaimsCtxKey, token.Claims)
var ClaimsCtxKey = contextKey("claims")

// GetClaimsFromContext retrieves the verified token claims from ctx.
// ok is false when none are stored or the value has an unexpected type.
func GetClaimsFromContext(ctx context.Context) (models.TokenClaims, bool) {
	claims, ok := ctx.Value(ClaimsCtxKey).(models.TokenClaims)
	return claims, ok
}
