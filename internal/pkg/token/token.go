// Package token issues and verifies the stateless bearer tokens that
// gate every wallet operation. Verification depends only on the signing
// secret and the token itself, so there is no session state to share
// between instances and no way to revoke a token before it expires.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validity is how long an issued token stays verifiable.
const Validity = time.Hour

// ErrInvalidToken is returned for every verification failure. Callers
// must not be able to tell a bad signature from a malformed or expired
// token.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

func Issue(userID string, secret []byte) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(Validity)),
		},
		UserID: userID,
	})

	return t.SignedString(secret)
}

func Verify(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !t.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
