package auth

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret     []byte
	jwtSecretOnce sync.Once
)

func secret() ([]byte, error) {
	jwtSecretOnce.Do(func() {
		jwtSecret = []byte(os.Getenv("JWT_SECRET"))
	})
	if len(jwtSecret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return jwtSecret, nil
}

type Claims struct {
	UserID   uint `json:"user_id"`
	TenantID uint `json:"tenant_id"`
	IsAdmin  bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// GenerateToken issues a JWT valid for 24h.
func GenerateToken(userID, tenantID uint, isAdmin bool) (string, error) {
	claims := &Claims{
		UserID:   userID,
		TenantID: tenantID,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	key, err := secret()
	if err != nil {
		return "", err
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ParseAndValidate validates the token and returns its claims.
func ParseAndValidate(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret()
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("could not extract claims")
	}
	return claims, nil
}
