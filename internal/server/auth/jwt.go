// Package auth implements the two pure building blocks of the login flow:
// salted password verification and signed access-token issuance.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"noteboard/internal/common"
)

// Claims carries the identity embedded in an access token: display name,
// role and account id, plus the registered expiry claim. Expiry is the sole
// lifetime bound; there is no server-side revocation.
type Claims struct {
	jwt.RegisteredClaims
	Name      string `json:"name"`
	Role      string `json:"role"`
	AccountID string `json:"account_id"`
}

// GenerateToken mints an HS256-signed token with the given identity claims,
// valid from now until now+validityDuration.
func GenerateToken(name, role, accountID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Name:      name,
		Role:      role,
		AccountID: accountID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseClaims validates the token signature and expiry and returns the
// embedded claims. Only HMAC-signed tokens are accepted.
func ParseClaims(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
