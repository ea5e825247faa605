package http

import (
	"errors"
	"net/http"

	"campus-advisor/internal/chat"
	pkgErrors "campus-advisor/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, chat.ErrMissingUser):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
