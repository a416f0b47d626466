package middleware

import (
	"net/http"
	"strings"

	"github.com/quirknotes/server/internal/logger"
	"github.com/quirknotes/server/internal/model"
)

// TokenParser resolves usernames from bearer tokens.
type TokenParser interface {
	Parse(tokenString string) (string, error)
}

// Authenticate is the gateway every note operation passes through. It
// extracts the bearer token from the Authorization header and verifies it.
// The token's claim is trusted as-is: no credential store lookup happens
// here.
type Authenticate struct {
	tokens TokenParser
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate gateway.
func NewAuthenticate(tokens TokenParser, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, logger: logger}
}

// Authenticate returns the username bound to the request's bearer token. A
// missing header, wrong scheme or failed verification all produce the same
// ErrInvalidToken.
func (m *Authenticate) Authenticate(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", model.ErrInvalidToken
	}

	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return "", model.ErrInvalidToken
	}

	username, err := m.tokens.Parse(tokenString)
	if err != nil {
		m.logger.Debug("Authenticate: token rejected",
			"path", r.URL.Path)
		return "", model.ErrInvalidToken
	}

	return username, nil
}
