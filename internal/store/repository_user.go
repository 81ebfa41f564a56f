package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type userRepository struct {
	db *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db: db,
	}
}

// FindUserByName implements [UserRepository].
func (r *userRepository) FindUserByName(ctx context.Context, name string) (models.User, error) {
	return r.findUserBy(ctx, columnName, name)
}

// FindUserByEmail implements [UserRepository].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, columnEmail, email)
}

func (r *userRepository) findUserBy(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUserBy").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&foundUser.UserID, &foundUser.Name, &foundUser.Email, &foundUser.Password)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.findUserBy").Str("column", column).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}

// CreateUser implements [UserRepository].
//
// Error handling:
//   - unique violation on name → [ErrNameAlreadyExists];
//   - unique violation on email → [ErrEmailAlreadyExists];
//   - anything else → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user.Name, user.Email, user.Password)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.UserID, &created.Name, &created.Email, &created.Password)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		if column, ok := r.db.errorClassificator.UniqueViolation(err); ok {
			switch column {
			case columnName:
				return models.User{}, ErrNameAlreadyExists
			case columnEmail:
				return models.User{}, ErrEmailAlreadyExists
			}
		}

		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Int64("user_id", created.UserID).Msg("user created")
	return created, nil
}

// ChangePassword implements [UserRepository].
func (r *userRepository) ChangePassword(ctx context.Context, email, passwordHash string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildChangePasswordQuery(r.db.builder, email, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ChangePassword").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ChangePassword").Msg("error updating password")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
