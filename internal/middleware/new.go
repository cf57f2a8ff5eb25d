package middleware

import (
	"council-archive/config"
	"council-archive/pkg/log"
	"council-archive/pkg/scope"
)

type Middleware struct {
	l              log.Logger
	jwtManager     scope.Manager
	cookieConfig   config.CookieConfig
	limiter        *rateLimiter
	allowedOrigins map[string]bool
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig, rateLimitPerMin int, allowedOrigins []string) Middleware {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	return Middleware{
		l:              l,
		jwtManager:     jwtManager,
		cookieConfig:   cookieConfig,
		limiter:        newRateLimiter(rateLimitPerMin),
		allowedOrigins: origins,
	}
}
