package http

import (
	"council-archive/internal/question"
	"council-archive/pkg/datemath"
	"council-archive/pkg/log"
)

type handler struct {
	l        log.Logger
	uc       question.UseCase
	dateMath *datemath.Parser
}

// New creates a new HTTP handler for the question domain.
func New(l log.Logger, uc question.UseCase, dateMath *datemath.Parser) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
	}
}
