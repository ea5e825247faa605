package http

import (
	"errors"
	"net/http"

	"campus-advisor/internal/advice"
	pkgErrors "campus-advisor/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, advice.ErrInvalidCategory):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, advice.ErrMissingUser):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
