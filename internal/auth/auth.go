package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any credential the authenticator rejects.
var ErrInvalidToken = errors.New("invalid token")

// Authenticator validates a bearer credential presented on intake. It is
// an interface so the static shared key can later be swapped for a
// stronger scheme without touching the gateway's control flow.
type Authenticator interface {
	Authenticate(token string) error
}

// StaticToken compares the presented token against a single shared secret.
type StaticToken struct {
	secret string
}

func NewStaticToken(secret string) *StaticToken {
	return &StaticToken{secret: secret}
}

func (a *StaticToken) Authenticate(token string) error {
	if subtle.ConstantTimeCompare([]byte(token), []byte(a.secret)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

// JWT accepts HS256 tokens signed with a shared secret. It is the drop-in
// upgrade path from StaticToken for producers that can mint tokens.
type JWT struct {
	secret []byte
}

func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret)}
}

func (a *JWT) Authenticate(token string) error {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return ErrInvalidToken
	}
	return nil
}
