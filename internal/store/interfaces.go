package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// UserRepository is the persistence abstraction over the "users" table.
//
// Lookups return [ErrNoUserWasFound] when no row matches. Each method is a
// single statement; no transaction spans several calls.
type UserRepository interface {
	// FindUserByName returns the user whose name equals name.
	FindUserByName(ctx context.Context, name string) (models.User, error)

	// FindUserByEmail returns the user whose email equals email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// CreateUser inserts user and returns it with its generated UserID.
	// A unique constraint violation yields [ErrNameAlreadyExists] or
	// [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// ChangePassword replaces the stored password hash of the user with the
	// given email and returns the number of affected rows.
	ChangePassword(ctx context.Context, email, passwordHash string) (int64, error)
}

// ErrorClassificator inspects driver-specific errors.
type ErrorClassificator interface {
	// UniqueViolation reports whether err is a unique constraint violation
	// and, if so, which column of the users table it concerns.
	UniqueViolation(err error) (column string, ok bool)
}
