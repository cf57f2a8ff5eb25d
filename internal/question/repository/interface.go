package repository

import (
	"context"

	"council-archive/internal/question"
)

// Repository is the composed interface for the question domain data store.
type Repository interface {
	QuestionRepository
	Migrate(ctx context.Context) error
}

// QuestionRepository defines all data access methods for the Question entity.
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, opt CreateQuestionOptions) (question.Question, error)
	GetOneQuestion(ctx context.Context, opt GetOneQuestionOptions) (question.Question, error)
	ListQuestions(ctx context.Context, opt ListQuestionsOptions) ([]question.Question, error)
	DeleteQuestion(ctx context.Context, id string) error
}
