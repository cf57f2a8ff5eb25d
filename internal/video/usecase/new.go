package usecase

import (
	"golang.org/x/sync/singleflight"

	"council-archive/internal/video"
	"council-archive/internal/video/repository"
	"council-archive/pkg/log"
	"council-archive/pkg/youtube"
)

// implUseCase is the private implementation of video.UseCase.
type implUseCase struct {
	l     log.Logger
	yt    youtube.IYouTube
	cache repository.CacheRepository
	group singleflight.Group
}

// New creates a new video UseCase implementation.
func New(l log.Logger, yt youtube.IYouTube, cache repository.CacheRepository) video.UseCase {
	return &implUseCase{
		l:     l,
		yt:    yt,
		cache: cache,
	}
}
