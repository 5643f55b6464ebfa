package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteJSON_WritesBodyAndStatus(t *testing.T) {
	rr := httptest.NewRecorder()

	writeJSON(rr, httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"status": "ok"}, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestWriteJSON_UnencodableBody(t *testing.T) {
	rr := httptest.NewRecorder()

	writeJSON(rr, httptest.NewRequest(http.MethodGet, "/", nil), map[string]any{"ch": make(chan int)}, http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.Empty(t, rr.Header().Get("Content-Type"))
}
