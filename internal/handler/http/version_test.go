package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/health-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	h, mocks := newMockedHandler(t, testConfig())
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v2.0.0-beta+build.42")

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v2.0.0-beta+build.42", rr.Body.String())
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
}

func TestHealth_WritesStatus(t *testing.T) {
	h, mocks := newMockedHandler(t, testConfig())
	mocks.appInfo.EXPECT().Health(gomock.Any()).Return(models.Health{
		Status:    models.HealthStatusHealthy,
		Timestamp: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
		Database:  models.DatabaseDisconnected,
	})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy","timestamp":"2026-04-01T08:00:00Z","database":"disconnected"}`, rr.Body.String())
}

func TestDebug_WritesInfo(t *testing.T) {
	h, mocks := newMockedHandler(t, testConfig())
	mocks.appInfo.EXPECT().Debug(gomock.Any()).Return(models.DebugInfo{
		DatabaseConnected:       true,
		EnvironmentVariablesSet: map[string]bool{"SECRET_KEY": true},
		CurrentConfig:           models.DebugConfig{SecretKeyLength: 12, CloudantConfigured: true, FallbackDriver: "memory"},
	})

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/debug", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"database_connected": true,
		"environment_variables_set": {"SECRET_KEY": true},
		"current_config": {"secret_key_length": 12, "cloudant_configured": true, "fallback_driver": "memory"}
	}`, rr.Body.String())
}
