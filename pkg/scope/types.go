package scope

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Payload is the body of a session token.
type Payload struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

var (
	ErrInvalidToken = errors.New("scope: invalid token")
	ErrExpiredToken = errors.New("scope: token has expired")
)
