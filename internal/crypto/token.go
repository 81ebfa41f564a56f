// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-auth-service/models"
)

// hmacSigner is the HS256 implementation of [TokenSigner].
type hmacSigner struct {
	signKey  []byte
	issuer   string
	duration time.Duration

	// now is replaceable in tests.
	now func() time.Time
}

// NewTokenSigner constructs an HS256 [TokenSigner].
//
// Parameters:
//
//	signKey  - secret used to sign and verify tokens
//	issuer   - value of the "iss" claim, also required on parse
//	duration - lifetime of an issued token
//
// Returns ErrInvalidTokenParams if any parameter is empty or non-positive.
func NewTokenSigner(signKey, issuer string, duration time.Duration) (TokenSigner, error) {
	if signKey == "" || issuer == "" || duration <= 0 {
		return nil, ErrInvalidTokenParams
	}

	return &hmacSigner{
		signKey:  []byte(signKey),
		issuer:   issuer,
		duration: duration,
		now:      time.Now,
	}, nil
}

// Sign implements [TokenSigner]. The subject claim is the decimal user ID.
func (s *hmacSigner) Sign(claims models.TokenClaims) (models.Token, error) {
	now := s.now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   strconv.FormatInt(claims.UserID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error signing token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: signed}, nil
}

// Parse implements [TokenSigner].
func (s *hmacSigner) Parse(raw string) (models.Token, error) {
	var claims models.TokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		return s.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return models.Token{}, fmt.Errorf("%w: subject does not match user id", ErrInvalidToken)
	}

	return models.Token{Claims: claims, SignedString: raw}, nil
}
