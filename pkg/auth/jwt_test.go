package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken("kelompok6", "cashier")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "kelompok6", claims.Username)
	assert.Equal(t, "cashier", claims.Role)
	assert.Equal(t, "retail-pos", claims.Issuer)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTamperedSignature(t *testing.T) {
	token, err := GenerateToken("kelompok6", "cashier")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("123456")
	require.NoError(t, err)
	require.NotEqual(t, "123456", hash)

	assert.True(t, CheckPassword(hash, "123456"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
