package service

import "errors"

var (
	// ErrMissingFields is returned when a required input field is empty.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidDataProvided is returned when the request payload cannot be
	// decoded into the expected shape.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrDuplicateUsername is returned when registering a username that is
	// already held by another account.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike, so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrStoreUnavailable is returned when neither the remote nor the
	// fallback store could serve the request.
	ErrStoreUnavailable = errors.New("account store unavailable")

	// ErrVersionIsNotSpecified is returned by NewAppInfoService when neither the
	// build nor the configuration provides an application version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
