package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPassword      = "SecurePassword123!"
	testWrongPassword = "WrongPassword456!"
)

func TestHashPassword_Success(t *testing.T) {
	// Act
	salt, hash, err := HashPassword(testPassword)

	// Assert
	require.NoError(t, err, "HashPassword should not return error for valid password")
	assert.NotEmpty(t, salt, "Salt should not be empty")
	assert.NotEmpty(t, hash, "Hash should not be empty")
	assert.NotEqual(t, testPassword, hash, "Hash should be different from password")
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	// Act
	salt1, hash1, err1 := HashPassword(testPassword)
	salt2, hash2, err2 := HashPassword(testPassword)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, salt1, salt2, "Each call should generate a fresh salt")
	assert.NotEqual(t, hash1, hash2, "Same password should hash differently under different salts")
}

func TestHashPasswordWithSalt_Deterministic(t *testing.T) {
	// Arrange
	salt, hash, err := HashPassword(testPassword)
	require.NoError(t, err)

	// Act
	recomputed, err := HashPasswordWithSalt(testPassword, salt)

	// Assert: encrypt(p, encrypt(p).salt) reproduces encrypt(p).hash
	require.NoError(t, err)
	assert.Equal(t, hash, recomputed, "Hash must be reproducible from password and salt")
}

func TestVerifyPassword_Correct(t *testing.T) {
	// Arrange
	salt, hash, err := HashPassword(testPassword)
	require.NoError(t, err)

	// Act
	match, err := VerifyPassword(testPassword, salt, hash)

	// Assert
	require.NoError(t, err)
	assert.True(t, match, "Password should match its own hash")
}

func TestVerifyPassword_Incorrect(t *testing.T) {
	// Arrange
	salt, hash, err := HashPassword(testPassword)
	require.NoError(t, err)

	// Act
	match, err := VerifyPassword(testWrongPassword, salt, hash)

	// Assert
	require.NoError(t, err)
	assert.False(t, match, "Wrong password should not match hash")
}

func TestVerifyPassword_CorruptSalt(t *testing.T) {
	// Act
	match, err := VerifyPassword(testPassword, "!!!not-base64!!!", "whatever")

	// Assert
	assert.Error(t, err, "Corrupt salt should surface as an error")
	assert.False(t, match)
}

func TestHashPassword_EmptyPassword(t *testing.T) {
	// Argon2 itself accepts empty input; rejecting empty passwords is the
	// auth service's job, not the hash function's.
	salt, hash, err := HashPassword("")
	require.NoError(t, err)
	assert.NotEmpty(t, salt)
	assert.NotEmpty(t, hash)
}
