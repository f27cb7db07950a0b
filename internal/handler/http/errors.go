// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading a request. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidRecordID is returned when an {id} path segment or an id query
	// parameter is not a positive integer. It is answered like a missing record.
	ErrInvalidRecordID = errors.New("record not found")
)
