// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that can authenticate and own blogs.
// PasswordHash is never exposed via JSON; Password is only accepted on input
// (sign-up, password change) and is cleared before a user leaves the server.
type User struct {
	// UserID is the store-assigned identifier carried inside the session cookie.
	UserID int64 `json:"id"`

	// Email uniquely identifies at most one authenticatable principal.
	Email string `json:"email"`

	// Name is an optional display name.
	Name string `json:"name,omitempty"`

	// Password is the plaintext password submitted by the caller.
	// It is hashed by the service layer and never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the "users" table.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u with every credential field cleared.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// UserUpdate describes a partial user update. Only non-nil fields are written.
type UserUpdate struct {
	// UserID is taken from the route, never from the body.
	UserID int64 `json:"-"`

	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`

	// PasswordHash is filled by the service after hashing Password.
	PasswordHash *string `json:"-"`
}

// Credentials is the login form submitted to POST /sessions.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
