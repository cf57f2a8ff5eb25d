package auth

import "errors"

var (
	ErrInvalidState    = errors.New("invalid or expired login state")
	ErrMissingCode     = errors.New("authorization code is required")
	ErrExchangeFailed  = errors.New("google sign-in failed")
	ErrUnverifiedEmail = errors.New("google account email is not verified")
	ErrIssueToken      = errors.New("failed to issue session")
)
