package usecase

import (
	"time"

	"council-archive/internal/question"
	"council-archive/internal/question/repository"
	"council-archive/internal/video"
	"council-archive/pkg/datemath"
	"council-archive/pkg/entryparser"
	"council-archive/pkg/log"
)

// Config carries the archive settings the use case needs.
type Config struct {
	Parser              entryparser.Options
	SearchCaseSensitive bool
	WriteConcurrency    int
	DefaultPageSize     int
}

// implUseCase is the private implementation of question.UseCase.
type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	videoUC  video.UseCase
	dateMath *datemath.Parser
	parser   *entryparser.Parser
	cfg      Config
	now      func() time.Time
}

// New creates a new question UseCase implementation.
// videoUC may be nil, in which case submissions rely on client-supplied metadata.
func New(l log.Logger, repo repository.Repository, videoUC video.UseCase, dateMath *datemath.Parser, cfg Config) (question.UseCase, error) {
	parser, err := entryparser.NewParser(cfg.Parser)
	if err != nil {
		return nil, err
	}
	if cfg.WriteConcurrency <= 0 {
		cfg.WriteConcurrency = 1
	}

	return &implUseCase{
		l:        l,
		repo:     repo,
		videoUC:  videoUC,
		dateMath: dateMath,
		parser:   parser,
		cfg:      cfg,
		now:      time.Now,
	}, nil
}
