package http

import (
	"errors"
	"net/http"

	"campus-advisor/internal/resource"
	pkgErrors "campus-advisor/pkg/errors"
)

func (h *handler) mapError(err error) error {
	if errors.Is(err, resource.ErrInvalidCategory) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return pkgErrors.ErrInternalServerError
}
