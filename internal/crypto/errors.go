package crypto

import "errors"

var (
	ErrEmptySecret        = errors.New("empty cookie secret")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrDecryptionFailed   = errors.New("decryption failed")
	ErrMalformedCookie    = errors.New("malformed cookie value")
)
