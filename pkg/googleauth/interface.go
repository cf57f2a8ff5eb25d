package googleauth

import "context"

// IGoogleAuth is the sign-in flow used by the auth domain.
type IGoogleAuth interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (Identity, error)
}
