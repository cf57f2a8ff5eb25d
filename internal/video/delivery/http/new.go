package http

import (
	"council-archive/internal/video"
	"council-archive/pkg/datemath"
	"council-archive/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       video.UseCase
	dateMath *datemath.Parser
}

// New creates a new HTTP handler for the video domain.
func New(l log.Logger, uc video.UseCase, dateMath *datemath.Parser) *handler {
	return &handler{l: l, uc: uc, dateMath: dateMath}
}
