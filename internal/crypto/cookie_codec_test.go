package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"net/http"
	"testing"
)

func newTestCodec(t *testing.T, secret string) SessionCodec {
	t.Helper()
	codec, err := NewCookieCodec(secret)
	if err != nil {
		t.Fatalf("NewCookieCodec error: %v", err)
	}
	return codec
}

func TestNewCookieCodec_EmptySecret(t *testing.T) {
	if _, err := NewCookieCodec(""); !errors.Is(err, ErrEmptySecret) {
		t.Fatalf("expected ErrEmptySecret, got %v", err)
	}
}

func TestCookieCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t, "0123456789abcdef")
	plaintext := []byte("signed.session.envelope")

	sealed, err := codec.Encrypt(plaintext)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	got, err := codec.Decrypt(sealed)
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("Decrypt = %q, want %q", got, plaintext)
	}
}

func TestCookieCodec_NonceIsRandom(t *testing.T) {
	codec := newTestCodec(t, "0123456789abcdef")

	a, _ := codec.Encrypt([]byte("same"))
	b, _ := codec.Encrypt([]byte("same"))
	if a == b {
		t.Fatalf("expected two encryptions of the same plaintext to differ")
	}
}

func TestCookieCodec_SameSecretSameKey(t *testing.T) {
	sealed, err := newTestCodec(t, "0123456789abcdef").Encrypt([]byte("42"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	got, err := newTestCodec(t, "0123456789abcdef").Decrypt(sealed)
	if err != nil {
		t.Fatalf("Decrypt with re-derived key error: %v", err)
	}
	if string(got) != "42" {
		t.Fatalf("Decrypt = %q, want 42", got)
	}
}

func TestCookieCodec_ValueIsCookieSafe(t *testing.T) {
	codec := newTestCodec(t, "0123456789abcdef")
	sealed, err := codec.Encrypt(bytes.Repeat([]byte{0xFF}, 64))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	c := &http.Cookie{Name: "user_id", Value: sealed}
	if err := c.Valid(); err != nil {
		t.Fatalf("sealed value is not a valid cookie value: %v", err)
	}
}

func TestCookieCodec_DecryptRejects(t *testing.T) {
	codec := newTestCodec(t, "0123456789abcdef")
	sealed, err := codec.Encrypt([]byte("7"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	blob, _ := base64.RawURLEncoding.DecodeString(sealed)
	blob[len(blob)-1] ^= 0x01
	tampered := base64.RawURLEncoding.EncodeToString(blob)

	foreign, err := newTestCodec(t, "another-secret-value").Encrypt([]byte("7"))
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{"not base64", "***", ErrMalformedCookie},
		{"too short", base64.RawURLEncoding.EncodeToString([]byte("abc")), ErrCiphertextTooShort},
		{"tampered", tampered, ErrDecryptionFailed},
		{"other key", foreign, ErrDecryptionFailed},
		{"plain id", "7", ErrMalformedCookie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decrypt(tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decrypt(%q) error = %v, want %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
