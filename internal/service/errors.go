package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login for an unknown email and for
	// a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidDataProvided wraps every validation failure.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrSessionInvalid is returned for a session value that cannot be
	// opened, is expired or was issued for another purpose.
	ErrSessionInvalid = errors.New("session is invalid or expired")

	ErrSessionCreationFailed = errors.New("session creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	// ErrNotAuthenticated is returned when the server redirected a client
	// write to the login page.
	ErrNotAuthenticated = errors.New("not signed in")

	// ErrNotFound is returned when the server answered 404.
	ErrNotFound = errors.New("record not found")

	// ErrServerUnavailable wraps transport failures and 5xx answers.
	ErrServerUnavailable = errors.New("blog server unavailable")
)
