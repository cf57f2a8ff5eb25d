package googleauth

import "errors"

// Identity is the verified Google account behind a completed sign-in.
type Identity struct {
	ID            string
	Email         string
	VerifiedEmail bool
	Name          string
	Picture       string
}

var (
	ErrMissingCode     = errors.New("googleauth: authorization code is empty")
	ErrMissingIdentity = errors.New("googleauth: userinfo has no email")
)
