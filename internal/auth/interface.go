package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context) (LoginOutput, error)
	Callback(ctx context.Context, input CallbackInput) (CallbackOutput, error)
}
