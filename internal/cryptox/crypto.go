// Package cryptox holds the password hashing and random token helpers used
// by the fake backend.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLen = 16
	keyLen  = 32
)

var ErrMalformedHash = errors.New("malformed password hash")

// DeriveKey stretches password with argon2id.
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, keyLen)
}

// HashPassword returns "salt$key", both base64, for storage.
func HashPassword(password string) (string, error) {
	salt, err := RandomBytes(saltLen)
	if err != nil {
		return "", err
	}
	key := DeriveKey([]byte(password), salt)
	enc := base64.RawStdEncoding
	return enc.EncodeToString(salt) + "$" + enc.EncodeToString(key), nil
}

// VerifyPassword checks password against a value produced by HashPassword.
func VerifyPassword(hash, password string) (bool, error) {
	saltB64, keyB64, ok := strings.Cut(hash, "$")
	if !ok {
		return false, ErrMalformedHash
	}
	enc := base64.RawStdEncoding
	salt, err := enc.DecodeString(saltB64)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	want, err := enc.DecodeString(keyB64)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	got := DeriveKey([]byte(password), salt)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("random bytes: %w", err)
	}
	return b, nil
}

// RandomToken returns n random bytes hex-encoded, for emailed links.
func RandomToken(n int) (string, error) {
	b, err := RandomBytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
