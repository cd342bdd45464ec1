package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	details, err := GenerateJWT("u-1", "Ada Lovelace", "ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", details.TokenType)
	assert.Equal(t, "86400", details.ExpiresIn)

	claims, err := ValidateJWT(details.Token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)

	_, err = ValidateJWT(details.Token, "other")
	require.Error(t, err)
}

func TestGenerateJWT_RequiresSecretAndUser(t *testing.T) {
	_, err := GenerateJWT("u-1", "", "", "")
	require.Error(t, err)

	_, err = GenerateJWT("", "", "", "s3cret")
	require.Error(t, err)

	_, err = ValidateJWT("", "s3cret")
	require.Error(t, err)
}

func TestValidateJWT_RejectsForeignIssuer(t *testing.T) {
	claims := Claims{
		UserID: "u-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = ValidateJWT(signed, "s3cret")
	require.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}
