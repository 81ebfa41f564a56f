package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "no token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "only spaces after scheme", header: "Bearer    ", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		d := newTestDeps(t)

		rr := httptest.NewRecorder()
		d.handler.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("next must not be called")
		})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, models.CodeUnauthorized, decodeResponse(t, rr).Code)
	})

	t.Run("claims reach next handler", func(t *testing.T) {
		d := newTestDeps(t)
		claims := models.TokenClaims{UserID: 9, Email: "a@x.com", Name: "alice"}
		d.auth.EXPECT().ParseToken(gomock.Any(), "tok").Return(models.Token{Claims: claims}, nil)

		var got models.TokenClaims
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, _ = utils.GetClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rr := httptest.NewRecorder()
		d.handler.auth(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, claims, got)
	})
}

func TestMe_WithoutAuthMiddleware(t *testing.T) {
	d := newTestDeps(t)

	rr := httptest.NewRecorder()
	d.handler.me(rr, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
