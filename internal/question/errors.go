package question

import "errors"

var (
	ErrMissingVideoURL  = errors.New("youtube url is required")
	ErrMissingMeeting   = errors.New("meeting is required")
	ErrEmptyInput       = errors.New("raw input is required")
	ErrInvalidStyle     = errors.New("unknown input style")
	ErrSaveFailed       = errors.New("failed to save questions")
	ErrQuestionNotFound = errors.New("question not found")
	ErrForbidden        = errors.New("only the author can delete this question")
)
