package crypto

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-service/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-auth-service"
)

func newTestSigner(t *testing.T) *hmacSigner {
	t.Helper()
	s, err := NewTokenSigner(testSignKey, testIssuer, time.Hour)
	require.NoError(t, err)
	return s.(*hmacSigner)
}

func TestNewTokenSigner_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		issuer   string
		duration time.Duration
	}{
		{name: "empty key", issuer: testIssuer, duration: time.Hour},
		{name: "empty issuer", key: testSignKey, duration: time.Hour},
		{name: "zero duration", key: testSignKey, issuer: testIssuer},
		{name: "negative duration", key: testSignKey, issuer: testIssuer, duration: -time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTokenSigner(tt.key, tt.issuer, tt.duration)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestTokenSigner_SignAndParse(t *testing.T) {
	s := newTestSigner(t)
	issuedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return issuedAt }

	token, err := s.Sign(models.TokenClaims{UserID: 42, Email: "a@x.com", Name: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, 3, len(strings.Split(token.String(), ".")))
	assert.Equal(t, "42", token.Claims.Subject)
	assert.Equal(t, testIssuer, token.Claims.Issuer)
	assert.True(t, token.Claims.ExpiresAt.Time.Equal(issuedAt.Add(time.Hour)))

	parsed, err := s.Parse(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.Claims.UserID)
	assert.Equal(t, models.UserData{Email: "a@x.com", Name: "alice"}, parsed.Data())
	assert.Equal(t, token.SignedString, parsed.SignedString)
}

func TestTokenSigner_ParseRejects(t *testing.T) {
	s := newTestSigner(t)
	valid, err := s.Sign(models.TokenClaims{UserID: 1, Email: "a@x.com", Name: "alice"})
	require.NoError(t, err)

	otherKey, err := NewTokenSigner("another-key", testIssuer, time.Hour)
	require.NoError(t, err)
	foreign, err := otherKey.Sign(models.TokenClaims{UserID: 1})
	require.NoError(t, err)

	otherIssuer, err := NewTokenSigner(testSignKey, "someone-else", time.Hour)
	require.NoError(t, err)
	wrongIssuer, err := otherIssuer.Sign(models.TokenClaims{UserID: 1})
	require.NoError(t, err)

	expiredSigner := newTestSigner(t)
	expiredSigner.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSigner.Sign(models.TokenClaims{UserID: 1})
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, models.TokenClaims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	forgedSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, models.TokenClaims{
		UserID: 2,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "garbage", raw: "not.a.token"},
		{name: "empty", raw: ""},
		{name: "tampered", raw: valid.SignedString + "x"},
		{name: "foreign key", raw: foreign.SignedString},
		{name: "wrong issuer", raw: wrongIssuer.SignedString},
		{name: "expired", raw: expired.SignedString},
		{name: "alg none", raw: noneAlg},
		{name: "subject mismatch", raw: forgedSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Parse(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
