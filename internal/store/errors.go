package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a lookup matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNameAlreadyExists is returned when an insert violates the unique
	// constraint on users.name.
	ErrNameAlreadyExists = errors.New("name already exists")

	// ErrEmailAlreadyExists is returned when an insert violates the unique
	// constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Low-level database errors. Repository methods wrap the driver error with
// one of these.
var (
	// ErrUnsupportedDSN is returned when the DSN names no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")

	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT or INSERT ... RETURNING
	// fails for a reason other than a known constraint.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an UPDATE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")
)
