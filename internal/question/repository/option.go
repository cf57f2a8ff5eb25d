package repository

import "time"

// CreateQuestionOptions holds parameters for inserting a new Question.
// The ID is generated by the repository.
type CreateQuestionOptions struct {
	Date        string
	Meeting     string
	Speaker     string
	Questioner  string
	Summary     string
	Timestamp   string
	YoutubeURL  string
	Title       string
	PublishedAt string
	Author      string
	CreatedAt   time.Time
}

// GetOneQuestionOptions holds filter parameters for fetching a single Question.
type GetOneQuestionOptions struct {
	ID string
}

// ListQuestionsOptions holds ordering for listing Questions.
// Results are always newest first; filtering happens in the use case.
type ListQuestionsOptions struct {
	Author string
}
