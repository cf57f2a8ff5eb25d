package http

import (
	"errors"
	"net/http"

	"council-archive/internal/question"
	pkgErrors "council-archive/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unmapped is reported as a generic 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, question.ErrMissingVideoURL),
		errors.Is(err, question.ErrMissingMeeting),
		errors.Is(err, question.ErrEmptyInput),
		errors.Is(err, question.ErrInvalidStyle):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, question.ErrQuestionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, question.ErrForbidden):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
