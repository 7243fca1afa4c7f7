package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the assertions carried by an access token: the registered
// claims (subject = user ID, issued-at, expiry) plus the username.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
}

// TokenIssuer mints and verifies HS256-signed access tokens. The secret key
// and validity window are fixed for the process lifetime; changing the key
// requires a restart.
type TokenIssuer struct {
	secretKey []byte
	validity  time.Duration
}

func NewTokenIssuer(secretKey []byte, validity time.Duration) *TokenIssuer {
	return &TokenIssuer{secretKey: secretKey, validity: validity}
}

// Issue signs a token binding the user's ID and username to an expiry
// of now + the configured validity.
func (i *TokenIssuer) Issue(userID, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
		Username: username,
	})

	return token.SignedString(i.secretKey)
}

// Verify parses and validates a token string. Signature integrity is
// checked before expiry; no claims are ever returned on failure.
//
// Failures map to common.ErrTokenMalformed, common.ErrInvalidSignature or
// common.ErrTokenExpired.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return i.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, common.ErrInvalidSignature
	}

	return claims, nil
}
