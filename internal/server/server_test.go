package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/health-portal/internal/config"
	"github.com/MKhiriev/health-portal/internal/handler"
	myGRPC "github.com/MKhiriev/health-portal/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/health-portal/internal/handler/http"
	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/MKhiriev/health-portal/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type connectedSubscriber struct{}

func (connectedSubscriber) Subscribe(fn func(store.ConnectionState)) { fn(store.StateConnected) }

// ─────────────────────────────────────────────
// NewServer
// ─────────────────────────────────────────────

func TestNewServer_NoServers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

func TestNewServer_GRPCListenFailure(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, logger.Nop())}

	_, err := NewServer(handlers, config.Server{GRPCAddress: "not-an-address"}, logger.Nop())

	assert.Error(t, err)
}

func TestNewServer_GRPCOnly(t *testing.T) {
	handlers := &handler.Handlers{GRPC: myGRPC.NewHandler(nil, logger.Nop())}

	srv, err := NewServer(handlers, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	s := srv.(*server)
	assert.Nil(t, s.httpServer)
	require.NotNil(t, s.gRPCServer)
	s.Shutdown()
}

// ─────────────────────────────────────────────
// HTTP server
// ─────────────────────────────────────────────

func TestNewHTTPServer_Settings(t *testing.T) {
	h := http.NewServeMux()

	s := newHTTPServer(h, config.Server{HTTPAddress: ":5000"}, logger.Nop())

	assert.Equal(t, ":5000", s.server.Addr)
	assert.Equal(t, readHeaderTimeout, s.server.ReadHeaderTimeout)
	assert.Equal(t, h, s.server.Handler)
}

func TestHTTPServer_ShutdownBeforeRun(t *testing.T) {
	s := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	s.Shutdown()

	// a closed server returns immediately and without error
	assert.NoError(t, s.RunServer())
}

func TestHTTPServer_HandlerIsServed(t *testing.T) {
	s := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), config.Server{HTTPAddress: ":0"}, logger.Nop())

	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

// ─────────────────────────────────────────────
// gRPC server
// ─────────────────────────────────────────────

func TestGRPCServer_ServesHealth(t *testing.T) {
	g, err := newGRPCServer(myGRPC.NewHandler(connectedSubscriber{}, logger.Nop()), config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- g.RunServer() }()

	conn, err := grpc.NewClient(g.gRPCNetListener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(context.Background(),
		&grpc_health_v1.HealthCheckRequest{Service: myGRPC.DocumentStoreService})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, resp.GetStatus())

	require.NoError(t, conn.Close())
	g.Shutdown()
	assert.NoError(t, <-done)
}

// ─────────────────────────────────────────────
// RunServer
// ─────────────────────────────────────────────

func newTestHTTPHandler() *myHTTP.Handler {
	return myHTTP.NewHandler(nil, &config.StructuredConfig{}, logger.Nop())
}

func TestRunServer_StopsOnContextCancel(t *testing.T) {
	handlers := &handler.Handlers{
		HTTP: newTestHTTPHandler(),
		GRPC: myGRPC.NewHandler(nil, logger.Nop()),
	}
	srv, err := NewServer(handlers, config.Server{HTTPAddress: "127.0.0.1:0", GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	cancel()

	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after cancellation")
	}

	// a second shutdown is a no-op
	srv.Shutdown()
}

func TestRunServer_ReturnsTransportFailure(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{HTTP: newTestHTTPHandler()}, config.Server{HTTPAddress: "not-an-address"}, logger.Nop())
	require.NoError(t, err)

	err = srv.RunServer(context.Background())

	assert.ErrorContains(t, err, "ListenAndServe")
}
