// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// portal HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. The browser
// front end compares some of them verbatim.
package app

const (
	// MsgNoDataProvided is returned when a request that needs a JSON body
	// arrives without one.
	MsgNoDataProvided = "No data provided"

	// MsgInvalidPayload is returned when the body is not a JSON object of
	// the expected shape.
	MsgInvalidPayload = "Invalid request payload"

	// MsgMissingRequiredFields is returned by registration when username,
	// password or role is empty.
	MsgMissingRequiredFields = "Missing required fields"

	// MsgCredentialsRequired is returned by login when username or password
	// is empty.
	MsgCredentialsRequired = "Username and password required"

	// MsgUsernameExists is returned when a registration attempt is rejected
	// because the requested username is already in use.
	MsgUsernameExists = "Username already exists"

	// MsgInvalidCredentials is returned for an unknown username and a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgDatabaseUnavailable is returned when no account store could serve
	// the request.
	MsgDatabaseUnavailable = "Database unavailable"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "Registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session.
	MsgLoginFailed = "Login failed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgEndpointNotFound is returned for any route the API does not serve.
	MsgEndpointNotFound = "Endpoint not found"

	MsgRegistrationSuccessful = "Registration successful"
	MsgLoginSuccessful        = "Login successful"
	MsgLoggedOut              = "Logged out successfully"
)
