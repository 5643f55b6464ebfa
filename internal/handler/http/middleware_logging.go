package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/health-portal/internal/logger"
	"github.com/rs/zerolog"
)

// quietPaths are polled by probes; successful hits are logged at debug level.
var quietPaths = map[string]bool{
	"/api/health":  true,
	"/api/version": true,
}

// withLogging writes one entry per request once the handler returns. Only the
// path is logged: query strings never reach the log. The level follows the
// status: 5xx is an error, 4xx a warning.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		log := logger.FromRequest(r)

		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		case quietPaths[r.URL.Path]:
			event = log.Debug()
		default:
			event = log.Info()
		}

		event.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Msg("request handled")
	})
}
