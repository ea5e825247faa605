package chat

import "errors"

var (
	ErrEmptyMessage = errors.New("message is required")
	ErrMissingUser  = errors.New("user id is required")
)
