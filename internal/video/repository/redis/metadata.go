package redis

import (
	"context"
	"encoding/json"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"council-archive/internal/video"
	repo "council-archive/internal/video/repository"
)

// GetMetadata reads a cached entry. A miss returns a zero value and no error.
func (r *implRepository) GetMetadata(ctx context.Context, videoID string) (video.Metadata, error) {
	raw, err := r.client.Get(ctx, key(videoID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return video.Metadata{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetMetadata"), err)
		return video.Metadata{}, repo.ErrFailedToGet
	}

	var m video.Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		r.l.Warnf(ctx, "%s: drop corrupt entry %s: %v", r.dsn("GetMetadata"), videoID, err)
		return video.Metadata{}, nil
	}
	return m, nil
}

// SetMetadata stores m under its video ID.
func (r *implRepository) SetMetadata(ctx context.Context, m video.Metadata) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return repo.ErrFailedToSet
	}
	if err := r.client.Set(ctx, key(m.VideoID), raw, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetMetadata"), err)
		return repo.ErrFailedToSet
	}
	return nil
}
