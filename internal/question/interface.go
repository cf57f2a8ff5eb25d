package question

import (
	"context"

	"council-archive/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Commands
	Preview(ctx context.Context, input PreviewInput) (PreviewOutput, error)
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (SubmitOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Queries
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
}
