package video

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	GetMetadata(ctx context.Context, videoURL string) (Metadata, error)
}
