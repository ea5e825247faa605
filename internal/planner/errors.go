package planner

import "errors"

var (
	ErrNoCourses          = errors.New("at least one course is required")
	ErrTooManyCourses     = errors.New("too many courses")
	ErrInvalidHours       = errors.New("invalid number of study hours")
	ErrInvalidTimeOfDay   = errors.New("preferred times must be morning, afternoon or evening")
	ErrInvalidExamDate    = errors.New("invalid exam date")
	ErrExamDatePassed     = errors.New("exam date must be in the future")
	ErrMissingSubject     = errors.New("subject is required")
	ErrInvalidDaysToStudy = errors.New("invalid number of study days")
)
