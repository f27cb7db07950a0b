package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set sealed inside the encrypted session cookie.
//
// The subject carries the user ID, the audience pins the purpose of the
// envelope (so a token minted for another purpose is rejected) and the
// expiry bounds the session lifetime independently of the cookie itself.
type SessionClaims struct {
	jwt.RegisteredClaims
}

// Token is a parsed or freshly issued session envelope.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form that is encrypted into the cookie.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID parses the subject claim of c as an int64 user ID.
func (c *SessionClaims) GetUserID() (int64, error) {
	if c.Subject == "" {
		return 0, fmt.Errorf("empty subject in session claims")
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting session subject to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
