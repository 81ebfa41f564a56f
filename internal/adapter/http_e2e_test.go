package adapter

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/crypto"
	handlerhttp "github.com/MKhiriev/go-auth-service/internal/handler/http"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/models"
)

// newE2EClient starts the full server stack over an in-memory SQLite
// database and returns a client pointed at it.
func newE2EClient(t *testing.T) AuthClient {
	t.Helper()

	ctx := context.Background()
	db, err := store.NewDB(ctx, config.DB{DSN: "sqlite://:memory:"}, logger.Nop())
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	signer, err := crypto.NewTokenSigner("e2e-secret", "auth-service", time.Hour)
	require.NoError(t, err)

	cfg := &config.StructuredConfig{App: config.App{Version: "e2e"}}
	services, err := service.NewServices(
		store.NewStorages(db, logger.Nop()),
		crypto.NewPasswordHasher(bcrypt.MinCost),
		signer,
		cfg,
		logger.Nop(),
	)
	require.NoError(t, err)

	srv := httptest.NewServer(handlerhttp.NewHandler(services, 5*time.Second, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	c, err := NewHTTPAuthClient(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return c
}

func requireFailure(t *testing.T, err error, code models.ResponseCode, reason string) {
	t.Helper()

	var failure *models.Failure
	require.True(t, errors.As(err, &failure), "got %v", err)
	assert.Equal(t, code, failure.Code)
	assert.Equal(t, reason, failure.Reason)
}

func TestE2E_SignUpConflictThenSignIn(t *testing.T) {
	c := newE2EClient(t)
	ctx := context.Background()

	got, err := c.SignUp(ctx, models.SignUpRequest{Name: "alice", Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, models.UserData{Email: "a@x.com", Name: "alice"}, got)

	_, err = c.SignUp(ctx, models.SignUpRequest{Name: "alice", Email: "b@x.com", Password: "pw1"})
	requireFailure(t, err, models.CodeSignUpFail, "name already exists")

	_, err = c.SignUp(ctx, models.SignUpRequest{Name: "bob", Email: "a@x.com", Password: "pw1"})
	requireFailure(t, err, models.CodeSignUpFail, "email already exists")

	got, err = c.SignIn(ctx, models.SignInRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	assert.Equal(t, models.UserData{Email: "a@x.com", Name: "alice"}, got)
	assert.NotEmpty(t, c.Token())

	me, err := c.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, me)
}

func TestE2E_SignInFailures(t *testing.T) {
	c := newE2EClient(t)
	ctx := context.Background()

	_, err := c.SignIn(ctx, models.SignInRequest{Email: "nobody@x.com", Password: "pw1"})
	requireFailure(t, err, models.CodeSignInFail, "no matching user")

	_, err = c.SignUp(ctx, models.SignUpRequest{Name: "alice", Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = c.SignIn(ctx, models.SignInRequest{Email: "a@x.com", Password: "wrong"})
	requireFailure(t, err, models.CodeSignInFail, "password mismatch")
	assert.Empty(t, c.Token())
}

func TestE2E_SignInRejectsPasswordPastByteLimit(t *testing.T) {
	c := newE2EClient(t)
	ctx := context.Background()

	password := strings.Repeat("a", 70) + "é"
	_, err := c.SignUp(ctx, models.SignUpRequest{Name: "alice", Email: "a@x.com", Password: password})
	require.NoError(t, err)

	_, err = c.SignIn(ctx, models.SignInRequest{Email: "a@x.com", Password: password + "x"})
	requireFailure(t, err, models.CodeSignInFail, "password mismatch")
	assert.Empty(t, c.Token())

	_, err = c.SignIn(ctx, models.SignInRequest{Email: "a@x.com", Password: password})
	require.NoError(t, err)
}

func TestE2E_ChangePassword(t *testing.T) {
	c := newE2EClient(t)
	ctx := context.Background()

	_, err := c.ChangePassword(ctx, models.ChangePasswordRequest{Email: "nobody@x.com", Password: "pw2"})
	requireFailure(t, err, models.CodeChangePasswordFail, "no matching user")

	_, err = c.SignUp(ctx, models.SignUpRequest{Name: "alice", Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	_, err = c.SignUp(ctx, models.SignUpRequest{Name: "bob", Email: "b@x.com", Password: "bob-pw"})
	require.NoError(t, err)

	got, err := c.ChangePassword(ctx, models.ChangePasswordRequest{Email: "a@x.com", Password: "pw2"})
	require.NoError(t, err)
	assert.Equal(t, models.UserData{Email: "a@x.com", Name: "alice"}, got)

	_, err = c.SignIn(ctx, models.SignInRequest{Email: "a@x.com", Password: "pw1"})
	requireFailure(t, err, models.CodeSignInFail, "password mismatch")

	_, err = c.SignIn(ctx, models.SignInRequest{Email: "a@x.com", Password: "pw2"})
	require.NoError(t, err)

	_, err = c.SignIn(ctx, models.SignInRequest{Email: "b@x.com", Password: "bob-pw"})
	require.NoError(t, err)
}

func TestE2E_InvalidRequestAndUnauthorized(t *testing.T) {
	c := newE2EClient(t)
	ctx := context.Background()

	_, err := c.SignUp(ctx, models.SignUpRequest{Name: "alice", Email: "not-an-email", Password: "pw1"})
	var failure *models.Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, models.CodeInvalidRequest, failure.Code)

	_, err = c.Me(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	c.SetToken("garbage")
	_, err = c.Me(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestE2E_Version(t *testing.T) {
	c := newE2EClient(t)

	got, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "e2e", got)
}
