package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/crypto"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/models"
)

// authService is the concrete implementation of AuthService.
// Each operation is a single linear flow of independent repository calls;
// nothing is retried and no transaction spans the calls.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher salts, hashes and verifies passwords.
	hasher crypto.PasswordHasher

	// signer issues and verifies bearer tokens.
	signer crypto.TokenSigner

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository
// and primitives.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, signer crypto.TokenSigner, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		signer:         signer,
		logger:         logger,
	}
}

// SignUp registers a new user.
//
// The name is checked before the email, so a request where both are taken
// fails with the name conflict. A conflict detected by the database itself
// (two concurrent sign-ups passing the checks) is reported the same way.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.UserData, error) {
	log := logger.FromContext(ctx)

	taken, err := a.exists(a.userRepository.FindUserByName(ctx, req.Name))
	if err != nil {
		log.Err(err).Str("name", req.Name).Msg("user search by name failed")
		return models.UserData{}, fmt.Errorf("user search by name failed: %w", err)
	}
	if taken {
		return models.UserData{}, models.SignUpFail(ErrNameTaken.Error(), ErrNameTaken)
	}

	taken, err = a.exists(a.userRepository.FindUserByEmail(ctx, req.Email))
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.UserData{}, fmt.Errorf("user search by email failed: %w", err)
	}
	if taken {
		return models.UserData{}, models.SignUpFail(ErrEmailTaken.Error(), ErrEmailTaken)
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return models.UserData{}, err
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: passwordHash,
	})
	switch {
	case errors.Is(err, store.ErrNameAlreadyExists):
		log.Warn().Str("name", req.Name).Msg("name was taken concurrently")
		return models.UserData{}, models.SignUpFail(ErrNameTaken.Error(), ErrNameTaken)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		log.Warn().Str("email", req.Email).Msg("email was taken concurrently")
		return models.UserData{}, models.SignUpFail(ErrEmailTaken.Error(), ErrEmailTaken)
	case err != nil:
		log.Err(err).Str("name", req.Name).Msg("user creation ended with error")
		return models.UserData{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", created.UserID).Msg("user signed up")
	return created.Data(), nil
}

// SignIn authenticates a user by email and password and issues a bearer
// token over {userId, email, name}.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignedInUser, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.SignedInUser{}, models.SignInFail(ErrUserNotFound.Error(), ErrUserNotFound)
	case err != nil:
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.SignedInUser{}, fmt.Errorf("user search by email failed: %w", err)
	}

	err = a.hasher.Compare(foundUser.Password, req.Password)
	switch {
	case errors.Is(err, crypto.ErrPasswordMismatch):
		log.Info().Int64("user_id", foundUser.UserID).Msg("wrong password")
		return models.SignedInUser{}, models.SignInFail(ErrPasswordMismatch.Error(), ErrPasswordMismatch)
	case err != nil:
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("error comparing password")
		return models.SignedInUser{}, fmt.Errorf("error comparing password: %w", err)
	}

	token, err := a.signer.Sign(models.TokenClaims{
		UserID: foundUser.UserID,
		Email:  foundUser.Email,
		Name:   foundUser.Name,
	})
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("error creating token")
		return models.SignedInUser{}, fmt.Errorf("error creating token: %w", err)
	}

	log.Info().Int64("user_id", foundUser.UserID).Msg("user signed in")
	return models.SignedInUser{User: foundUser.Data(), Token: token}, nil
}

// ChangePassword replaces the password hash of the user with the given
// email. Nothing is written when the user does not exist.
func (a *authService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.UserData, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return models.UserData{}, models.ChangePasswordFail(ErrUserNotFound.Error(), ErrUserNotFound)
	case err != nil:
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.UserData{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return models.UserData{}, err
	}

	// the affected row count is not branched on: the user was just found
	affected, err := a.userRepository.ChangePassword(ctx, req.Email, passwordHash)
	if err != nil {
		log.Err(err).Int64("user_id", foundUser.UserID).Msg("error changing password")
		return models.UserData{}, fmt.Errorf("error changing password: %w", err)
	}

	log.Info().Int64("user_id", foundUser.UserID).Int64("rows_affected", affected).Msg("password changed")
	return foundUser.Data(), nil
}

// ParseToken validates and parses a raw bearer token. Any validation
// failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.signer.Parse(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

// exists folds a lookup result into a found flag; ErrNoUserWasFound is not
// an error here.
func (a *authService) exists(_ models.User, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNoUserWasFound):
		return false, nil
	default:
		return false, err
	}
}

func (a *authService) hashPassword(plain string) (string, error) {
	hash, err := a.hasher.Hash(plain)
	switch {
	case errors.Is(err, crypto.ErrPasswordTooLong):
		return "", models.InvalidRequestFail(ErrPasswordTooLong.Error(), ErrPasswordTooLong)
	case err != nil:
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return hash, nil
}
