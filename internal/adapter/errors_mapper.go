package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody caps how much of a response body ends up in an error string.
const maxErrorBody = 256

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	reason := responseReason(resp)

	switch code := resp.StatusCode(); {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return fmt.Errorf("%w: %w: %s", ErrConnectivity, ErrUnauthorized, reason)
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrConnectivity, code, reason)
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, reason)
	case code == http.StatusConflict || code == http.StatusPreconditionFailed:
		return fmt.Errorf("%w: %s", ErrConflict, reason)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrRequestFailed, code, reason)
	}
}

func mapTransportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrConnectivity, op, err)
}

// responseReason extracts the CouchDB {"error","reason"} pair when present and
// falls back to the trimmed raw body.
func responseReason(resp *resty.Response) string {
	var body errorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		if body.Reason == "" {
			return body.Error
		}
		return body.Error + ": " + body.Reason
	}

	raw := strings.TrimSpace(string(resp.Body()))
	if raw == "" {
		return http.StatusText(resp.StatusCode())
	}
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody]
	}
	return raw
}
