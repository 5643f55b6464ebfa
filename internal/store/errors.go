package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an insert would create a second
	// account with an existing username. Only stores that can enforce
	// uniqueness atomically return it.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrStoreUnavailable is returned when the store could not serve the
	// request: the remote store is unreachable, not configured, or failed
	// mid-operation. It never describes a missing record.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrStoreNotConfigured is returned (wrapped in ErrStoreUnavailable) when
	// the remote store has no credentials or endpoint.
	ErrStoreNotConfigured = errors.New("remote store is not configured")

	// ErrCoolingDown is returned (wrapped in ErrStoreUnavailable) while a
	// recent connection failure suppresses new attempts.
	ErrCoolingDown = errors.New("remote store reconnect is cooling down")

	// ErrMalformedDocument is returned when a stored record cannot be decoded.
	ErrMalformedDocument = errors.New("malformed stored document")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")
)
