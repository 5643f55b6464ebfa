// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport to the remote document
// store (IBM Cloudant, a CouchDB-compatible service).
//
// The primary abstraction is [DocumentStore], which decouples the store
// layer from the HTTP API. The package ships a resty-based implementation
// ([NewCloudantAdapter]) that exchanges an IAM API key for short-lived bearer
// tokens and attaches them to every request.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// transport failures by mapHTTPError and mapTransportError so that callers
// can use [errors.Is] to tell connectivity faults ([ErrConnectivity]) apart
// from rejected requests ([ErrRequestFailed]).
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_store_mock.go -package=mock

// DocumentStore defines the subset of the CouchDB HTTP API the portal needs.
// Every method honours ctx cancellation and deadlines.
type DocumentStore interface {
	// ServerInformation performs the liveness round-trip (GET /). A non-nil
	// error means the service could not be reached or refused the
	// credentials.
	ServerInformation(ctx context.Context) (ServerInfo, error)

	// DatabaseExists reports whether the named database exists.
	DatabaseExists(ctx context.Context, db string) (bool, error)

	// CreateDatabase creates the named database. A database that already
	// exists is not an error.
	CreateDatabase(ctx context.Context, db string) error

	// Find runs a Mango query against db and returns the raw matching
	// documents in server order.
	Find(ctx context.Context, db string, query FindQuery) ([]json.RawMessage, error)

	// PostDocument stores doc as a new document in db and returns the
	// server-assigned identifier and revision.
	PostDocument(ctx context.Context, db string, doc any) (DocumentResult, error)
}
