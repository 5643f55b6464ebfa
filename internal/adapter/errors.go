package adapter

import "errors"

var (
	// ErrConfiguration is returned when the adapter is built without the
	// values needed to reach the service.
	ErrConfiguration = errors.New("document store is not configured")

	// ErrConnectivity covers every failure that means the service cannot
	// currently be used: transport errors, timeouts, rejected credentials,
	// throttling and server-side faults.
	ErrConnectivity = errors.New("document store unreachable")

	// ErrUnauthorized is returned (together with ErrConnectivity) when the
	// service rejects the bearer token or the IAM exchange fails.
	ErrUnauthorized = errors.New("document store rejected credentials")

	// ErrNotFound is returned for a 404 response.
	ErrNotFound = errors.New("document store resource not found")

	// ErrConflict is returned for 409 and 412 responses.
	ErrConflict = errors.New("document store conflict")

	// ErrRequestFailed is returned for any other rejected request.
	ErrRequestFailed = errors.New("document store request failed")
)
