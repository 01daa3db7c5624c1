package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}

	assert.Len(t, key1, keyLen)
	assert.NotEqual(t, key1, DeriveKey([]byte("secret-passwore"), salt))
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")
	if bytes.Equal(DeriveKey(password, []byte("salt-1")), DeriveKey(password, []byte("salt-2"))) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestHashPassword_RoundTrip(t *testing.T) {
	h1, err := HashPassword("Str0ng!pw")
	require.NoError(t, err)
	h2, err := HashPassword("Str0ng!pw")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "salt must differ")

	ok, err := VerifyPassword(h1, "Str0ng!pw")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(h1, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_Malformed(t *testing.T) {
	for _, h := range []string{"", "nodollar", "!!!$abc", "abc$!!!"} {
		_, err := VerifyPassword(h, "x")
		assert.ErrorIs(t, err, ErrMalformedHash, h)
	}
}

func TestRandomToken(t *testing.T) {
	a, err := RandomToken(16)
	require.NoError(t, err)
	b, err := RandomToken(16)
	require.NoError(t, err)
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
