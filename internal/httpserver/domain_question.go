package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"council-archive/internal/middleware"
	questionHTTP "council-archive/internal/question/delivery/http"
	questionRepo "council-archive/internal/question/repository"
	questionPostgre "council-archive/internal/question/repository/postgre"
	questionSQLite "council-archive/internal/question/repository/sqlite"
	questionUC "council-archive/internal/question/usecase"
	"council-archive/internal/video"
	"council-archive/pkg/entryparser"
)

// setupQuestionDomain initializes the question domain and registers its routes.
func (srv HTTPServer) setupQuestionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, videoUC video.UseCase) error {
	// 1. Repository
	var repo questionRepo.Repository
	switch srv.storageDriver {
	case "postgre":
		repo = questionPostgre.New(srv.postgresDB, srv.l)
	default:
		repo = questionSQLite.New(srv.sqliteDB, srv.l)
	}
	if err := repo.Migrate(ctx); err != nil {
		return fmt.Errorf("question repository migrate: %w", err)
	}

	// 2. UseCase
	style, err := entryparser.ParseStyle(srv.archive.InputStyle)
	if err != nil {
		return fmt.Errorf("archive.input_style: %w", err)
	}
	blankLines, err := entryparser.ParseBlankLinePolicy(srv.archive.BlankLines)
	if err != nil {
		return fmt.Errorf("archive.blank_lines: %w", err)
	}
	uc, err := questionUC.New(srv.l, repo, videoUC, srv.dateMath, questionUC.Config{
		Parser:              entryparser.Options{Style: style, BlankLines: blankLines},
		SearchCaseSensitive: srv.archive.SearchCaseSensitive,
		WriteConcurrency:    srv.archive.WriteConcurrency,
		DefaultPageSize:     srv.archive.DefaultPageSize,
	})
	if err != nil {
		return err
	}

	// 3. HTTP Handler
	h := questionHTTP.New(srv.l, uc, srv.dateMath)

	// 4. Routes: registers /api/v1/questions
	questionHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Question domain registered (storage: %s)", srv.storageDriver)
	return nil
}
