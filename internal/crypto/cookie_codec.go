// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// cookieKeySalt domain-separates the cookie key from any other key derived
// from the same secret.
const cookieKeySalt = "go-blog encrypted cookie"

// cookieCodec is the AES-256-GCM implementation of [SessionCodec].
type cookieCodec struct {
	aead cipher.AEAD
}

// NewCookieCodec derives a 256-bit key from secret with Argon2id and returns
// a [SessionCodec] sealing cookie values with AES-256-GCM.
//
// Argon2id parameters:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//
// The derivation runs once per process, so the same secret always yields the
// same key and cookies survive restarts.
func NewCookieCodec(secret string) (SessionCodec, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	key := argon2.IDKey([]byte(secret), []byte(cookieKeySalt), 1, 64*1024, 4, 32)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &cookieCodec{aead: aead}, nil
}

// Encrypt implements [SessionCodec]. A random 12-byte nonce is prepended to
// the ciphertext and the blob is encoded with unpadded URL-safe base64.
func (c *cookieCodec) Encrypt(plaintext []byte) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := c.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawURLEncoding.EncodeToString(blob), nil
}

// Decrypt implements [SessionCodec].
func (c *cookieCodec) Decrypt(sealed string) ([]byte, error) {
	blob, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCookie, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize+c.aead.Overhead() {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}
