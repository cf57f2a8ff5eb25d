package repository

import (
	"context"

	"council-archive/internal/video"
)

// CacheRepository stores metadata by video ID.
// Get returns a zero-value Metadata (VideoID == "") on a miss.
type CacheRepository interface {
	GetMetadata(ctx context.Context, videoID string) (video.Metadata, error)
	SetMetadata(ctx context.Context, m video.Metadata) error
}
