package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-service/models"
)

var usersTable = models.User{}.TableName()

const (
	columnID       = "id"
	columnName     = "name"
	columnEmail    = "email"
	columnPassword = "password"
)

var userColumns = []string{columnID, columnName, columnEmail, columnPassword}

// buildFindUserQuery renders SELECT of one user by an equality on column.
func buildFindUserQuery(builder sq.StatementBuilderType, column, value string) (string, []any, error) {
	return builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

// buildCreateUserQuery renders an INSERT returning the stored row.
func buildCreateUserQuery(builder sq.StatementBuilderType, name, email, passwordHash string) (string, []any, error) {
	return builder.
		Insert(usersTable).
		Columns(columnName, columnEmail, columnPassword).
		Values(name, email, passwordHash).
		Suffix("RETURNING id, name, email, password").
		ToSql()
}

// buildChangePasswordQuery renders an UPDATE of the password of the user
// with the given email.
func buildChangePasswordQuery(builder sq.StatementBuilderType, email, passwordHash string) (string, []any, error) {
	return builder.
		Update(usersTable).
		Set(columnPassword, passwordHash).
		Where(sq.Eq{columnEmail: email}).
		ToSql()
}
