// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, HTTP response writing,
// HTTP client initialization, session envelope generation and validation,
// and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActingUserCtxKey is the key under which the authenticator stores the user
// resolved from the session cookie.
var ActingUserCtxKey = contextKey("actingUser")

// WithActingUser returns a copy of ctx carrying user as the acting user of
// the current request. Credential fields are cleared before storing.
func WithActingUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, ActingUserCtxKey, user.Public())
}

// ActingUser returns the user attached by [WithActingUser].
//
// Returns the user and an ok flag:
//   - ok == true : the request is authenticated
//   - ok == false: no user is attached (anonymous request)
//
// Example usage:
//
//	user, ok := utils.ActingUser(r.Context())
//	if !ok {
//	    // request is unauthenticated
//	}
func ActingUser(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(ActingUserCtxKey).(models.User)
	return user, ok
}
