package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// SessionCodec seals and opens the value of the session cookie.
//
// Encrypt output is URL-safe and can be used as a cookie value as-is.
// Decrypt fails on any value that was not produced by Encrypt with the same
// key, including truncated or modified values.
type SessionCodec interface {
	// Encrypt seals plaintext with an authenticated cipher and returns the
	// encoded blob (nonce || ciphertext).
	Encrypt(plaintext []byte) (string, error)

	// Decrypt opens a blob produced by Encrypt.
	Decrypt(sealed string) ([]byte, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	// Hash returns a salted hash of password suitable for storage.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash.
	Compare(hash, password string) bool
}
