package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the payload signed into every bearer token.
//
// No server-side session exists: whoever presents a token that verifies
// against the server key is treated as the user described by these claims.
type TokenClaims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`

	// RegisteredClaims carries iss, sub, iat and exp.
	jwt.RegisteredClaims
}

// Token pairs the claims with their compact JWS serialization.
type Token struct {
	Claims TokenClaims

	// SignedString is the header.payload.signature form sent in the
	// Authorization header.
	SignedString string `json:"-"`
}

// String returns the signed token string.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Data returns the public user projection encoded in the token.
func (t Token) Data() UserData {
	return UserData{
		Email: t.Claims.Email,
		Name:  t.Claims.Name,
	}
}
