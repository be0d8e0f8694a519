package utils_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamshad-ansari/fitpro-backend/utils"
)

func TestJWT_RoundTrip(t *testing.T) {
	secret := gofakeit.UUID()
	userID := "64f1b2c3d4e5f6a7b8c9d0e1"

	token, err := utils.GenerateJWT(secret, userID, gofakeit.Email(), time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := utils.ParseJWT(secret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, sub)
}

func TestJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("secret-one", "user123", "a@b.com", time.Hour)
	require.NoError(t, err)

	_, err = utils.ParseJWT("secret-two", token)
	assert.Error(t, err)
}

func TestJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("secret", "user123", "a@b.com", -time.Minute)
	require.NoError(t, err)

	_, err = utils.ParseJWT("secret", token)
	assert.Error(t, err)
}

func TestJWT_EmptySecretRefused(t *testing.T) {
	_, err := utils.GenerateJWT("", "user123", "a@b.com", time.Hour)
	assert.Error(t, err)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	password := gofakeit.Password(true, true, true, true, false, 12)

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	require.NotEqual(t, password, hash)

	assert.True(t, utils.CheckPasswordHash(password, hash))
	assert.False(t, utils.CheckPasswordHash(password+"x", hash))
}
