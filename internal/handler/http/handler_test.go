package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/health-portal/internal/config"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/mock"
	"github.com/MKhiriev/health-portal/internal/service"
	"github.com/MKhiriev/health-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testConfig returns the configuration handlers are built from in tests.
func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{Version: "test", DebugEndpoint: true},
		Auth: config.Auth{
			SessionTTL: time.Hour,
			CookieName: "session",
		},
		Server: config.Server{
			AllowedOrigins: []string{"https://portal.example"},
			RequestTimeout: 5 * time.Second,
		},
	}
}

// handlerMocks bundles the service mocks behind a test Handler.
type handlerMocks struct {
	auth     *mock.MockAuthService
	sessions *mock.MockSessionService
	appInfo  *mock.MockAppInfoService
}

func newMockedHandler(t *testing.T, cfg *config.StructuredConfig) (*Handler, handlerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := handlerMocks{
		auth:     mock.NewMockAuthService(ctrl),
		sessions: mock.NewMockSessionService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:    mocks.auth,
		SessionService: mocks.sessions,
		AppInfoService: mocks.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()), mocks
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresSettings(t *testing.T) {
	svc := &service.Services{}
	cfg := testConfig()
	cfg.Auth.CookieSecure = true

	h := NewHandler(svc, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, cookieSettings{name: "session", secure: true, ttl: time.Hour}, h.cookie)
	assert.Equal(t, []string{"https://portal.example"}, h.allowedOrigins)
	assert.True(t, h.debugEndpoint)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_UnknownRoute(t *testing.T) {
	h, _ := newMockedHandler(t, testConfig())

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/predict", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error":"Endpoint not found"}`, rr.Body.String())
}

func TestInit_WrongMethodIsNotFound(t *testing.T) {
	h, _ := newMockedHandler(t, testConfig())

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/login", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_DebugEndpointDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.App.DebugEndpoint = false
	h, _ := newMockedHandler(t, cfg)

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/debug", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_CommonHeaders(t *testing.T) {
	h, mocks := newMockedHandler(t, testConfig())
	mocks.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
}

func TestInit_CORSPreflight(t *testing.T) {
	h, _ := newMockedHandler(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set("Origin", "https://portal.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	h.Init().ServeHTTP(rr, req)

	assert.Equal(t, "https://portal.example", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
}

func TestInit_CORSRejectsUnknownOrigin(t *testing.T) {
	h, _ := newMockedHandler(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/login", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	h.Init().ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_PanicRecovered(t *testing.T) {
	h, mocks := newMockedHandler(t, testConfig())
	mocks.appInfo.EXPECT().Health(gomock.Any()).DoAndReturn(func(context.Context) models.Health { panic("boom") })

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.Init().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
