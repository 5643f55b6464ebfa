package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/health-portal/internal/service"
)

// maxBodySize bounds every JSON request body.
const maxBodySize = 64 << 10

// readJSONBody reads the whole body of r and decodes it into dst. The raw
// bytes are returned as well so role attributes can be decoded from the same
// object.
func readJSONBody(w http.ResponseWriter, r *http.Request, dst any) ([]byte, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrRequestBodyTooLarge
		}
		return nil, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrEmptyRequestBody
	}

	if err = json.Unmarshal(trimmed, dst); err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}

	return trimmed, nil
}
