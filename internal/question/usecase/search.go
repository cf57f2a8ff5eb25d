package usecase

import (
	"context"
	"strings"

	"golang.org/x/text/width"

	"council-archive/internal/question"
	repo "council-archive/internal/question/repository"
)

// Search returns questions, newest first, whose speaker, questioner, date,
// summary or meeting contains the query. input.Author narrows the listing to one operator.
func (uc *implUseCase) Search(ctx context.Context, input question.SearchInput) (question.SearchOutput, error) {
	all, err := uc.repo.ListQuestions(ctx, repo.ListQuestionsOptions{Author: input.Author})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search ListQuestions: %v", err)
		return question.SearchOutput{}, err
	}

	matched := all
	if q := strings.TrimSpace(input.Query); q != "" {
		needle := uc.normalize(q)
		matched = make([]question.Question, 0, len(all))
		for _, item := range all {
			if uc.matches(item, needle) {
				matched = append(matched, item)
			}
		}
	}

	limit := input.Limit
	if limit <= 0 {
		limit = uc.cfg.DefaultPageSize
	}
	page := paginate(matched, limit, input.Offset)

	return question.SearchOutput{
		Questions: page,
		Total:     len(matched),
		Limit:     limit,
		Offset:    input.Offset,
	}, nil
}

func (uc *implUseCase) matches(q question.Question, needle string) bool {
	for _, field := range []string{q.Speaker, q.Questioner, q.Date, q.Summary, q.Meeting} {
		if strings.Contains(uc.normalize(field), needle) {
			return true
		}
	}
	return false
}

// normalize folds width variants and case unless search is case sensitive.
func (uc *implUseCase) normalize(s string) string {
	if uc.cfg.SearchCaseSensitive {
		return s
	}
	return strings.ToLower(width.Fold.String(s))
}

func paginate(qs []question.Question, limit, offset int) []question.Question {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(qs) {
		return []question.Question{}
	}
	end := len(qs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return qs[offset:end]
}
