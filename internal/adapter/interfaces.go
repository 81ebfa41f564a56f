// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// AuthClient talks to a running auth service.
type AuthClient interface {
	// SignUp registers a new account.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.UserData, error)

	// SignIn authenticates and stores the issued bearer token.
	SignIn(ctx context.Context, req models.SignInRequest) (models.UserData, error)

	// ChangePassword replaces the password of the account with req.Email.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.UserData, error)

	// Me returns the user described by the stored bearer token.
	Me(ctx context.Context) (models.UserData, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	SetToken(token string)
	Token() string
}
