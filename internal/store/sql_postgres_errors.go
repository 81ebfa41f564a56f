package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique constraint names declared by the Postgres users migration.
const (
	constraintUsersName  = "users_name_key"
	constraintUsersEmail = "users_email_key"
)

var postgresUniqueConstraints = map[string]string{
	constraintUsersName:  columnName,
	constraintUsersEmail: columnEmail,
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL by
// inspecting the *pgconn.PgError returned through pgx.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// UniqueViolation implements [ErrorClassificator]. A unique_violation (23505)
// on a constraint this package does not know is reported with an empty column.
func (c *PostgresErrorClassifier) UniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return "", false
	}

	return postgresUniqueConstraints[pgErr.ConstraintName], true
}
