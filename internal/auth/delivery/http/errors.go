package http

import (
	"errors"
	"net/http"

	"council-archive/internal/auth"
	pkgErrors "council-archive/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidState), errors.Is(err, auth.ErrMissingCode):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrExchangeFailed), errors.Is(err, auth.ErrUnverifiedEmail):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
