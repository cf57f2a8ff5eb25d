package usecase

import (
	"context"
	"errors"
	"time"

	"council-archive/internal/video"
	"council-archive/pkg/youtube"
)

const fetchTimeout = 15 * time.Second

// GetMetadata resolves the title and publish time of the video behind videoURL.
// Lookups go through the cache; concurrent lookups of one video share a single fetch.
func (uc *implUseCase) GetMetadata(ctx context.Context, videoURL string) (video.Metadata, error) {
	videoID := youtube.ExtractVideoID(videoURL)
	if videoID == "" {
		return video.Metadata{}, video.ErrInvalidVideoURL
	}

	cached, err := uc.cache.GetMetadata(ctx, videoID)
	if err != nil {
		uc.l.Warnf(ctx, "uc.GetMetadata cache.GetMetadata: %v", err)
	}
	if cached.VideoID != "" {
		return cached, nil
	}

	// The fetch is shared by every waiter, so it must outlive the caller that started it.
	v, err, _ := uc.group.Do(videoID, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()
		return uc.fetch(fetchCtx, videoID)
	})
	if err != nil {
		return video.Metadata{}, err
	}
	return v.(video.Metadata), nil
}

func (uc *implUseCase) fetch(ctx context.Context, videoID string) (video.Metadata, error) {
	v, err := uc.yt.GetVideo(ctx, videoID)
	switch {
	case errors.Is(err, youtube.ErrVideoNotFound):
		return video.Metadata{}, video.ErrVideoNotFound
	case errors.Is(err, youtube.ErrInvalidVideoID):
		return video.Metadata{}, video.ErrInvalidVideoURL
	case err != nil:
		uc.l.Errorf(ctx, "uc.GetMetadata yt.GetVideo: %v", err)
		return video.Metadata{}, video.ErrMetadataUnavailable
	}

	m := video.Metadata{
		VideoID:     videoID,
		Title:       v.Title,
		PublishedAt: v.PublishedAt,
	}
	if err := uc.cache.SetMetadata(ctx, m); err != nil {
		uc.l.Warnf(ctx, "uc.GetMetadata cache.SetMetadata: %v", err)
	}
	return m, nil
}
