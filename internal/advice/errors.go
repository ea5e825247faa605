package advice

import "errors"

var (
	ErrMissingUser     = errors.New("user id is required")
	ErrInvalidCategory = errors.New("invalid advice category")
	ErrEmptyContent    = errors.New("advice content is empty")
)
