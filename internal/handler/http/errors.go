// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading request bodies. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyRequestBody is returned when a handler that needs a JSON body
	// receives an empty one.
	ErrEmptyRequestBody = errors.New("empty request body")

	// ErrRequestBodyTooLarge is returned when the body exceeds maxBodySize.
	ErrRequestBodyTooLarge = errors.New("request body too large")
)
