// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt hashes.
const maxPasswordBytes = 72

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
// The salt is generated by bcrypt and stored inside the encoded hash.
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher constructs a bcrypt [PasswordHasher]. A cost outside
// [bcrypt.MinCost, bcrypt.MaxCost] falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher].
func (h *bcryptHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Compare implements [PasswordHasher]. The comparison is constant-time.
//
// bcrypt compares only the first 72 bytes of plain, so longer input is
// rejected up front: no stored hash was made from it.
func (h *bcryptHasher) Compare(hash, plain string) error {
	if len(plain) > maxPasswordBytes {
		return ErrPasswordMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password: %w", err)
	}
}
