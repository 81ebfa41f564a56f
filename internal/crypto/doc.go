// Package crypto holds the two primitives the auth flows delegate to:
// bcrypt password hashing and HS256 bearer token signing.
package crypto
