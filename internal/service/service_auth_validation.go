package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-service/internal/validators"
	"github.com/MKhiriev/go-auth-service/models"
)

// AuthValidationService rejects malformed requests before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) SignUp(ctx context.Context, req models.SignUpRequest) (models.UserData, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.UserData{}, err
	}

	return v.inner.SignUp(ctx, req)
}

func (v *AuthValidationService) SignIn(ctx context.Context, req models.SignInRequest) (models.SignedInUser, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.SignedInUser{}, err
	}

	return v.inner.SignIn(ctx, req)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.UserData, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.UserData{}, err
	}

	return v.inner.ChangePassword(ctx, req)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

func (v *AuthValidationService) validate(ctx context.Context, req any) error {
	err := v.validator.Validate(ctx, req)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrInvalidRequest):
		return models.InvalidRequestFail(err.Error(), err)
	default:
		return fmt.Errorf("error during request validation: %w", err)
	}
}
