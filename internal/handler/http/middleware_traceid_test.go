package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBareHandler creates a Handler with only a logger set.
func newBareHandler(buf *bytes.Buffer) *Handler {
	if buf == nil {
		return &Handler{logger: logger.Nop()}
	}
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func executeWithTraceID(h *Handler, incoming string) *httptest.ResponseRecorder {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

func TestWithTraceID_ReusesIncomingHeader(t *testing.T) {
	var buf bytes.Buffer

	rr := executeWithTraceID(newBareHandler(&buf), "my-custom-trace-id")

	assert.Equal(t, "my-custom-trace-id", rr.Header().Get(traceIDHeader))
	assert.Contains(t, buf.String(), `"trace_id":"my-custom-trace-id"`)
}

func TestWithTraceID_ReplacesUnsafeIncomingHeader(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{"too long", strings.Repeat("a", maxTraceIDLength+1)},
		{"quote", `abc"def`},
		{"space", "abc def"},
		{"non ascii", "trace-\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := executeWithTraceID(newBareHandler(nil), tt.incoming)

			id := rr.Header().Get(traceIDHeader)
			assert.NotEqual(t, tt.incoming, id)
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		})
	}
}

func TestValidTraceID(t *testing.T) {
	assert.True(t, validTraceID("0af7651916cd43dd8448eb211c80319c"))
	assert.True(t, validTraceID("req_1.2-3"))
	assert.True(t, validTraceID(strings.Repeat("a", maxTraceIDLength)))
	assert.False(t, validTraceID(""))
	assert.False(t, validTraceID("a/b"))
}

func TestWithTraceID_GeneratesUniqueUUIDs(t *testing.T) {
	h := newBareHandler(nil)
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := executeWithTraceID(h, "").Header().Get(traceIDHeader)

		_, err := uuid.Parse(id)
		require.NoError(t, err, "trace ID must be valid UUID, got: %s", id)

		_, duplicate := seen[id]
		assert.False(t, duplicate, "duplicate trace ID generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_GeneratedIDReachesLogger(t *testing.T) {
	var buf bytes.Buffer

	rr := executeWithTraceID(newBareHandler(&buf), "")

	assert.Contains(t, buf.String(), `"trace_id":"`+rr.Header().Get(traceIDHeader)+`"`)
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	newBareHandler(nil).withTraceID(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, originalCtx, req.Context(), "original request context should not be mutated")
}
