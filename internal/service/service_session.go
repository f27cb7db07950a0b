package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// sessionService seals a signed session envelope (iss, aud, sub, iat, exp)
// into the cookie value with the injected [crypto.SessionCodec].
type sessionService struct {
	codec crypto.SessionCodec

	// signKey signs the envelope before it is encrypted.
	signKey string

	issuer   string
	audience string
	duration time.Duration
}

// NewSessionService constructs a [SessionService] for the cookie described
// by cfg. The envelope audience is "cookie.<cookie name>", so a value sealed
// for another cookie is rejected.
func NewSessionService(codec crypto.SessionCodec, cfg config.App) SessionService {
	return &sessionService{
		codec:    codec,
		signKey:  cfg.CookieSecret,
		issuer:   cfg.SessionIssuer,
		audience: "cookie." + cfg.CookieName,
		duration: cfg.SessionDuration,
	}
}

// Issue returns the encrypted cookie value identifying user.
func (s *sessionService) Issue(ctx context.Context, user models.User) (string, error) {
	token, err := utils.GenerateSessionToken(s.issuer, s.audience, user.UserID, s.duration, s.signKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	sealed, err := s.codec.Encrypt([]byte(token.String()))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return sealed, nil
}

// Resolve opens a cookie value and returns the user ID it carries. Every
// failure is reported as [ErrSessionInvalid].
func (s *sessionService) Resolve(ctx context.Context, sessionValue string) (int64, error) {
	log := logger.FromContext(ctx)

	plaintext, err := s.codec.Decrypt(sessionValue)
	if err != nil {
		log.Debug().Err(err).Str("func", "*sessionService.Resolve").Msg("session cookie cannot be decrypted")
		return 0, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}

	token, err := utils.ParseSessionToken(string(plaintext), s.signKey, s.issuer, s.audience)
	if err != nil {
		log.Debug().Err(err).Str("func", "*sessionService.Resolve").Msg("session envelope rejected")
		return 0, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}

	return token.UserID, nil
}
