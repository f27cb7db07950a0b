// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the blog server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPServerAdapter]) that keeps the encrypted session
// cookie in a cookie jar and follows the server's 303 redirects.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the blog server.
// Implementations hold the session established by Login and attach it to every
// later request.
type ServerAdapter interface {
	// Login creates a session for creds and returns the signed-in user.
	// Returns [ErrUnauthorized] (wrapped) when the server rejects the
	// credentials.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Logout ends the current session. It succeeds without a session too.
	Logout(ctx context.Context) error

	// GetPost fetches a single post. Returns [ErrNotFound] (wrapped) for an
	// unknown post.
	GetPost(ctx context.Context, postID int64) (models.Post, error)

	// ListComments fetches the comments of postID in creation order.
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)

	// CreateComment stores a new comment and returns the server's record.
	// Returns [ErrUnauthorized] (wrapped) when no session is held.
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)

	// UpdateComment replaces the body of an existing comment.
	// Returns [ErrUnauthorized] (wrapped) when no session is held.
	UpdateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
}
