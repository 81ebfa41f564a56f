package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/mock"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/models"
)

type testDeps struct {
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
	handler *Handler
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	auth := mock.NewMockAuthService(ctrl)
	appInfo := mock.NewMockAppInfoService(ctrl)
	services := &service.Services{AuthService: auth, AppInfoService: appInfo}

	return &testDeps{
		auth:    auth,
		appInfo: appInfo,
		handler: NewHandler(services, time.Second, logger.Nop()),
	}
}

// serve runs a request through the full router.
func (d *testDeps) serve(method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	d.handler.Init().ServeHTTP(rr, req)
	return rr
}

func decodeResponse(t *testing.T, rr *httptest.ResponseRecorder) models.Response {
	t.Helper()

	var resp models.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return resp
}
