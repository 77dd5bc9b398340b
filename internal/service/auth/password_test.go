package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptServiceHashAndCompare(t *testing.T) {
	svc := NewBcryptService()
	password := "correct-horse-battery"

	hash, err := svc.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.NoError(t, svc.Compare(hash, password))
	assert.Error(t, svc.Compare(hash, "wrong-password"))
}

func TestBcryptServiceHashesDiffer(t *testing.T) {
	svc := NewBcryptService()

	first, err := svc.Hash("correct-horse-battery")
	require.NoError(t, err)
	second, err := svc.Hash("correct-horse-battery")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second)
}
