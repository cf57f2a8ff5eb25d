package usecase

import (
	"context"

	"council-archive/internal/model"
	"council-archive/internal/question"
	repo "council-archive/internal/question/repository"
)

// Detail retrieves a single Question by ID. Returns ErrQuestionNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (question.DetailOutput, error) {
	q, err := uc.repo.GetOneQuestion(ctx, repo.GetOneQuestionOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneQuestion: %v", err)
		return question.DetailOutput{}, err
	}
	if q.ID == "" {
		return question.DetailOutput{}, question.ErrQuestionNotFound
	}
	return question.DetailOutput{Question: q}, nil
}

// Delete removes a Question. Only its author may delete it.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneQuestion(ctx, repo.GetOneQuestionOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneQuestion: %v", err)
		return err
	}
	if existing.ID == "" {
		return question.ErrQuestionNotFound
	}
	if sc.Email == "" || existing.Author != sc.Email {
		return question.ErrForbidden
	}

	if err := uc.repo.DeleteQuestion(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteQuestion: %v", err)
		return err
	}
	uc.l.Infof(ctx, "uc.Delete: question %s deleted by %s", id, sc.Email)
	return nil
}
