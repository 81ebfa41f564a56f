package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	d := newTestDeps(t)
	d.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := d.serve(http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rr.Body.String())
}
