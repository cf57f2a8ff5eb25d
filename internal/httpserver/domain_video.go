package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"council-archive/internal/middleware"
	"council-archive/internal/video"
	videoHTTP "council-archive/internal/video/delivery/http"
	videoRepo "council-archive/internal/video/repository"
	videoMemory "council-archive/internal/video/repository/memory"
	videoRedis "council-archive/internal/video/repository/redis"
	videoUC "council-archive/internal/video/usecase"
)

const metadataCacheSize = 1024

// setupVideoDomain registers /api/v1/videos and returns the use case for other domains.
// Returns nil when no YouTube client is configured.
func (srv HTTPServer) setupVideoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) video.UseCase {
	if srv.youtube == nil {
		srv.l.Warnf(ctx, "YouTube client not configured, video metadata disabled")
		return nil
	}

	// 1. Repository
	var cache videoRepo.CacheRepository
	if srv.redisClient != nil {
		cache = videoRedis.New(srv.redisClient, srv.metadataTTL, srv.l)
		srv.l.Infof(ctx, "Video metadata cache: redis")
	} else {
		cache = videoMemory.New(metadataCacheSize, srv.metadataTTL)
		srv.l.Infof(ctx, "Video metadata cache: memory")
	}

	// 2. UseCase
	uc := videoUC.New(srv.l, srv.youtube, cache)

	// 3. HTTP Handler
	h := videoHTTP.New(srv.l, uc, srv.dateMath)

	// 4. Routes: registers /api/v1/videos/metadata
	videoHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Video domain registered")
	return uc
}
