package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-service/internal/mock"
	"github.com/MKhiriev/go-auth-service/models"
)

func newValidatedAuthSvc(t *testing.T) (AuthService, *mock.MockAuthService) {
	t.Helper()
	inner := mock.NewMockAuthService(gomock.NewController(t))
	return NewAuthValidationService().Wrap(inner), inner
}

func TestAuthValidationService_RejectsBeforeInner(t *testing.T) {
	svc, _ := newValidatedAuthSvc(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, models.SignUpRequest{Name: "alice", Email: "not-an-email", Password: "pw"})
	requireFailureCode(t, err, models.CodeInvalidRequest)

	_, err = svc.SignIn(ctx, models.SignInRequest{Email: "a@x.com"})
	requireFailureCode(t, err, models.CodeInvalidRequest)

	_, err = svc.ChangePassword(ctx, models.ChangePasswordRequest{Password: "pw"})
	requireFailureCode(t, err, models.CodeInvalidRequest)

	_, err = svc.ParseToken(ctx, "")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthValidationService_DelegatesValidRequests(t *testing.T) {
	svc, inner := newValidatedAuthSvc(t)
	ctx := context.Background()

	signUp := models.SignUpRequest{Name: "alice", Email: "a@x.com", Password: "pw1"}
	signIn := models.SignInRequest{Email: "a@x.com", Password: "pw1"}
	change := models.ChangePasswordRequest{Email: "a@x.com", Password: "pw2"}
	data := models.UserData{Email: "a@x.com", Name: "alice"}

	inner.EXPECT().SignUp(ctx, signUp).Return(data, nil)
	inner.EXPECT().SignIn(ctx, signIn).Return(models.SignedInUser{User: data}, nil)
	inner.EXPECT().ChangePassword(ctx, change).Return(data, nil)
	inner.EXPECT().ParseToken(ctx, "raw").Return(models.Token{SignedString: "raw"}, nil)

	got, err := svc.SignUp(ctx, signUp)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	signedIn, err := svc.SignIn(ctx, signIn)
	require.NoError(t, err)
	assert.Equal(t, data, signedIn.User)

	got, err = svc.ChangePassword(ctx, change)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	token, err := svc.ParseToken(ctx, "raw")
	require.NoError(t, err)
	assert.Equal(t, "raw", token.String())
}

func requireFailureCode(t *testing.T, err error, code models.ResponseCode) {
	t.Helper()

	var failure *models.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, code, failure.Code)
	assert.NotEmpty(t, failure.Reason)
}
