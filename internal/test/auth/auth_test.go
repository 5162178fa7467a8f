package auth_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-market-backend/internal/auth"
)

func TestStaticToken(t *testing.T) {
	authenticator := auth.NewStaticToken("secret-key")

	assert.NoError(t, authenticator.Authenticate("secret-key"))
	assert.ErrorIs(t, authenticator.Authenticate("wrong-key"), auth.ErrInvalidToken)
	assert.ErrorIs(t, authenticator.Authenticate(""), auth.ErrInvalidToken)
}

func TestJWT(t *testing.T) {
	secret := "jwt-signing-secret-long-enough-for-hs256"
	authenticator := auth.NewJWT(secret)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "bot"})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	assert.NoError(t, authenticator.Authenticate(signed))
}

func TestJWT_WrongSecret(t *testing.T) {
	authenticator := auth.NewJWT("right-secret")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "bot"})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	assert.ErrorIs(t, authenticator.Authenticate(signed), auth.ErrInvalidToken)
}

func TestJWT_Garbage(t *testing.T) {
	authenticator := auth.NewJWT("right-secret")
	assert.ErrorIs(t, authenticator.Authenticate("not-a-jwt"), auth.ErrInvalidToken)
}
