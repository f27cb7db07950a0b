// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials against bcrypt hashes stored through a
// UserRepository and resolves session cookie values via a SessionService.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// hasher compares submitted passwords with stored hashes.
	hasher crypto.PasswordHasher

	// sessions opens session cookie values.
	sessions SessionService

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, sessions SessionService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		sessions:       sessions,
		logger:         logger,
	}
}

// Login authenticates an existing user by email and password.
//
// Returns the authenticated user record or:
//   - ErrInvalidCredentials if email or password is empty, no user has the
//     email, or the password does not match. Callers cannot tell these apart.
//   - A wrapped storage error if the repository lookup fails for another reason.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Debug().Str("func", "*authService.Login").Msg("empty credentials provided")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("func", "*authService.Login").Msg("no user with given email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Compare(foundUser.PasswordHash, creds.Password) {
		log.Debug().Str("func", "*authService.Login").Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser.Public(), nil
}

// Authenticate resolves sessionValue to the user it was issued for.
//
// Returns ErrSessionInvalid for a value that cannot be opened and
// store.ErrNoUserWasFound (wrapped) when the user no longer exists.
func (a *authService) Authenticate(ctx context.Context, sessionValue string) (models.User, error) {
	userID, err := a.sessions.Resolve(ctx, sessionValue)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("session user lookup failed: %w", err)
	}

	return user.Public(), nil
}
