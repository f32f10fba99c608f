package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for expired, malformed or badly signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the registered claims plus the owning account identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"userid"`
	Username string `json:"username"`
}

// Generate issues a signed HS256 token for the given account.
func Generate(userID, username, secret string, validity time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		UserID:   userID,
		Username: username,
	})
	return t.SignedString([]byte(secret))
}

// Parse verifies the signature and returns the claims.
func Parse(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !t.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
