// Package auth implements session credentials: HS256 JWT minting/validation
// and bcrypt password hashing.
package auth

import (
	"time"

	"github.com/dmitrijs2005/tabsense/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims includes the registered claims plus the bound user identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string
	IsAdmin bool
}

// GenerateToken mints a signed token bound to userID with a fixed expiry.
func GenerateToken(userID string, isAdmin bool, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:  userID,
		IsAdmin: isAdmin,
	})

	return token.SignedString(secretKey)
}

// ParseToken validates a token string and returns its claims. Expired or
// otherwise invalid tokens yield common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
