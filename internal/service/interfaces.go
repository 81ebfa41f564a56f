package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// AuthService implements the sign-up, sign-in and change-password flows.
//
// Every client-facing failure is returned as a *models.Failure. Any other
// non-nil error is unexpected (storage outage, broken hash, signing error)
// and must not be shown to the client verbatim.
type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.UserData, error)
	SignIn(ctx context.Context, req models.SignInRequest) (models.SignedInUser, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.UserData, error)

	// ParseToken verifies a bearer token issued by SignIn.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
