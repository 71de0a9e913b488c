package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fintrackhq/finance_tracker_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "test-secret", time.Hour, "fintrack-test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "fintrack-test", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "test-secret", time.Hour, "fintrack-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("user-1", "test-secret", -time.Minute, "fintrack-test")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "test-secret")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.True(t, utils.CheckPasswordHash("correct-horse", hash))
	assert.False(t, utils.CheckPasswordHash("wrong", hash))
}

func TestHashPassword_TooLong(t *testing.T) {
	long := strings.Repeat("x", 73)

	_, err := utils.HashPassword(long)
	assert.ErrorIs(t, err, utils.ErrPasswordTooLong)
}

func TestCheckPasswordHash_EmptyHashNeverMatches(t *testing.T) {
	assert.False(t, utils.CheckPasswordHash("anything", ""))
}
