package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.Write([]byte("hello"))
	w.WriteHeader(http.StatusTeapot) // ignored: header already sent
	w.Write([]byte(" world"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 11, w.size)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Same(t, rr, w.Unwrap())
}
