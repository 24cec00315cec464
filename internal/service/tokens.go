package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that fail verification
var ErrInvalidToken = errors.New("invalid session token")

const tokenIssuer = "finplan-service"

// Tokens signs and verifies the bearer tokens that carry a wizard session id
type Tokens struct {
	Secret []byte
	TTL    time.Duration
}

// Sign issues a token for sessionID expiring TTL after now
func (t Tokens) Sign(sessionID string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(t.TTL)
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Second)),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}
	return s, expiresAt, nil
}

// Verify returns the session id carried by token
func (t Tokens) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(tk *jwt.Token) (any, error) {
		if tk.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return t.Secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	c, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || c.Subject == "" {
		return "", ErrInvalidToken
	}
	return c.Subject, nil
}
