package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/argon2"
)

// Argon2 parameters
const (
	SaltLength  = 16
	Memory      = 64 * 1024 // 64 MB
	Iterations  = 1
	Parallelism = 4
	KeyLength   = 32
)

// HashPassword generates a fresh random salt and the Argon2id hash of the
// password under it. Salt and hash are returned separately, base64-encoded,
// because they live in separate columns.
func HashPassword(password string) (salt, hash string, err error) {
	rawSalt := make([]byte, SaltLength)
	if _, err := rand.Read(rawSalt); err != nil {
		return "", "", err
	}

	rawHash := argon2.IDKey([]byte(password), rawSalt, Iterations, Memory, Parallelism, KeyLength)

	return base64.RawStdEncoding.EncodeToString(rawSalt),
		base64.RawStdEncoding.EncodeToString(rawHash),
		nil
}

// HashPasswordWithSalt recomputes the hash for a known salt. Deterministic;
// used for verification.
func HashPasswordWithSalt(password, salt string) (string, error) {
	rawSalt, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return "", err
	}

	rawHash := argon2.IDKey([]byte(password), rawSalt, Iterations, Memory, Parallelism, KeyLength)
	return base64.RawStdEncoding.EncodeToString(rawHash), nil
}

// VerifyPassword checks the password against a stored salt and hash.
// The comparison is constant-time.
func VerifyPassword(password, salt, storedHash string) (bool, error) {
	computed, err := HashPasswordWithSalt(password, salt)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1, nil
}
