package http

import (
	"errors"
	"net/http"

	"campus-advisor/internal/profile"
	pkgErrors "campus-advisor/pkg/errors"
)

// mapError translates profile errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, profile.ErrEmailTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, profile.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, profile.ErrInvalidName),
		errors.Is(err, profile.ErrInvalidEmail),
		errors.Is(err, profile.ErrInvalidYear),
		errors.Is(err, profile.ErrInvalidStressLevel):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
