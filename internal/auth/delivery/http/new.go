package http

import (
	"council-archive/config"
	"council-archive/internal/auth"
	"council-archive/pkg/log"
)

type handler struct {
	l            log.Logger
	uc           auth.UseCase
	cookieConfig config.CookieConfig
	postLoginURL string
}

// New creates a new HTTP handler for the auth domain.
// When postLoginURL is set the callback redirects there instead of answering with JSON.
func New(l log.Logger, uc auth.UseCase, cookieConfig config.CookieConfig, postLoginURL string) *handler {
	return &handler{
		l:            l,
		uc:           uc,
		cookieConfig: cookieConfig,
		postLoginURL: postLoginURL,
	}
}
