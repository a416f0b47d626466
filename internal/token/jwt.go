package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quirknotes/server/internal/model"
)

// Claims represents session token claims carrying the authenticated username.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// JWT implements TokenManager backed by symmetric HMAC. The signing secret
// is fixed for the process lifetime.
type JWT struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWT creates a new JWT token manager with the provided secret key and
// token validity duration.
func NewJWT(secretKey string, tokenTTL time.Duration) *JWT {
	return &JWT{secretKey: secretKey, tokenTTL: tokenTTL}
}

// Generate creates a signed session token for the given username.
func (j *JWT) Generate(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
		},
		Username: username,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Parse validates a session token and extracts the username. Every failure
// mode, malformed, wrong signature or expired, is reported as the same
// ErrInvalidToken so callers cannot tell them apart.
func (j *JWT) Parse(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return "", model.ErrInvalidToken
	}
	if !token.Valid {
		return "", model.ErrInvalidToken
	}
	if claims.Username == "" {
		return "", model.ErrInvalidToken
	}
	return claims.Username, nil
}
