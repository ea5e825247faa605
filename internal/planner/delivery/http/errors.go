package http

import (
	"errors"
	"net/http"

	"campus-advisor/internal/planner"
	pkgErrors "campus-advisor/pkg/errors"
)

var badRequest = []error{
	planner.ErrNoCourses,
	planner.ErrTooManyCourses,
	planner.ErrInvalidHours,
	planner.ErrInvalidTimeOfDay,
	planner.ErrInvalidExamDate,
	planner.ErrExamDatePassed,
	planner.ErrMissingSubject,
	planner.ErrInvalidDaysToStudy,
}

func (h *handler) mapError(err error) error {
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return pkgErrors.NewHTTPError(http.StatusBadRequest, target.Error())
		}
	}
	return pkgErrors.ErrInternalServerError
}
