package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"council-archive/internal/model"
	"council-archive/internal/question"
	repo "council-archive/internal/question/repository"
	"council-archive/internal/video"
	"council-archive/pkg/entryparser"
)

// Submit parses the pasted text and stores one question per entry.
// Writes are independent: a failure is reported as ErrSaveFailed and
// records already written are kept.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input question.SubmitInput) (question.SubmitOutput, error) {
	if err := validateSubmit(input); err != nil {
		return question.SubmitOutput{}, err
	}

	entries := uc.parser.Parse(input.RawText)
	if len(entries) == 0 {
		return question.SubmitOutput{Questions: []question.Question{}}, nil
	}

	meta := uc.resolveMetadata(ctx, input)
	now := uc.now()
	plan := planRecords(input, meta, entries, sc.Email, uc.dateMath.Today(now), now)

	created, err := uc.execute(ctx, plan)
	if err != nil {
		return question.SubmitOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Submit: %d questions stored by %s", len(created), sc.Email)
	return question.SubmitOutput{Questions: created}, nil
}

func validateSubmit(input question.SubmitInput) error {
	switch {
	case strings.TrimSpace(input.VideoURL) == "":
		return question.ErrMissingVideoURL
	case strings.TrimSpace(input.RawText) == "":
		return question.ErrEmptyInput
	case strings.TrimSpace(input.Meeting) == "":
		return question.ErrMissingMeeting
	}
	return nil
}

// resolveMetadata prefers what the client already fetched. Lookup failures
// leave title and publish time empty.
func (uc *implUseCase) resolveMetadata(ctx context.Context, input question.SubmitInput) video.Metadata {
	if input.Title != "" || input.PublishedAt != "" {
		return video.Metadata{Title: input.Title, PublishedAt: input.PublishedAt}
	}
	if uc.videoUC == nil {
		return video.Metadata{}
	}

	meta, err := uc.videoUC.GetMetadata(ctx, input.VideoURL)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Submit videoUC.GetMetadata: %v", err)
		return video.Metadata{}
	}
	return meta
}

// planRecords projects the parsed entries onto the records to write.
func planRecords(input question.SubmitInput, meta video.Metadata, entries []entryparser.Entry, author, date string, now time.Time) []repo.CreateQuestionOptions {
	speaker := orDefault(input.Speaker)
	questioner := orDefault(input.Questioner)
	meeting := strings.TrimSpace(input.Meeting)
	videoURL := strings.TrimSpace(input.VideoURL)

	plan := make([]repo.CreateQuestionOptions, len(entries))
	for i, e := range entries {
		plan[i] = repo.CreateQuestionOptions{
			Date:        date,
			Meeting:     meeting,
			Speaker:     speaker,
			Questioner:  questioner,
			Summary:     e.Summary,
			Timestamp:   e.Timestamp,
			YoutubeURL:  videoURL,
			Title:       meta.Title,
			PublishedAt: meta.PublishedAt,
			Author:      author,
			CreatedAt:   now,
		}
	}
	return plan
}

// execute runs the planned writes with bounded concurrency. The result keeps plan order.
func (uc *implUseCase) execute(ctx context.Context, plan []repo.CreateQuestionOptions) ([]question.Question, error) {
	created := make([]question.Question, len(plan))

	var g errgroup.Group
	g.SetLimit(uc.cfg.WriteConcurrency)
	for i, opt := range plan {
		g.Go(func() error {
			q, err := uc.repo.CreateQuestion(ctx, opt)
			if err != nil {
				return err
			}
			created[i] = q
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "uc.Submit CreateQuestion: %v", err)
		return nil, question.ErrSaveFailed
	}
	return created, nil
}
