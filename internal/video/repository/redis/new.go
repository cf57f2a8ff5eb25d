package redis

import (
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"council-archive/internal/video/repository"
	"council-archive/pkg/log"
)

const keyPrefix = "video:metadata:"

type implRepository struct {
	client *goredis.Client
	ttl    time.Duration
	l      log.Logger
}

// New creates a Redis-backed metadata cache. A zero ttl keeps entries forever.
func New(client *goredis.Client, ttl time.Duration, l log.Logger) repository.CacheRepository {
	if client == nil {
		panic("video/repository/redis: client is required")
	}
	return &implRepository{client: client, ttl: ttl, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("video/repository/redis.%s", method)
}

func key(videoID string) string {
	return keyPrefix + videoID
}
