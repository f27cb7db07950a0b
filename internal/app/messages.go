// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// blog server handlers and the terminal client.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies or shown on screen to describe the outcome of an operation.
package app

const (
	// MsgSessionCreated is the notice returned with the redirect that follows
	// a successful login.
	MsgSessionCreated = "Session was successfully created."

	// MsgLoginFailed is returned with the login form when the email is
	// unknown or the password does not match. Both cases read the same.
	MsgLoginFailed = "invalid email or password, please try again"

	// MsgEmailAndPasswordRequired is shown by the client when a login form is
	// submitted with an empty field.
	MsgEmailAndPasswordRequired = "email and password are required"

	// MsgServerUnavailable is shown by the client when the blog server cannot
	// be reached.
	MsgServerUnavailable = "network is down or the server is unavailable"
)
