package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"council-archive/internal/video"
	"council-archive/internal/video/repository"
)

const defaultSize = 1024

type implRepository struct {
	cache *expirable.LRU[string, video.Metadata]
}

// New creates an in-process metadata cache bounded to size entries.
func New(size int, ttl time.Duration) repository.CacheRepository {
	if size <= 0 {
		size = defaultSize
	}
	return &implRepository{cache: expirable.NewLRU[string, video.Metadata](size, nil, ttl)}
}

// GetMetadata reads a cached entry. A miss returns a zero value and no error.
func (r *implRepository) GetMetadata(_ context.Context, videoID string) (video.Metadata, error) {
	m, _ := r.cache.Get(videoID)
	return m, nil
}

// SetMetadata stores m under its video ID.
func (r *implRepository) SetMetadata(_ context.Context, m video.Metadata) error {
	r.cache.Add(m.VideoID, m)
	return nil
}
