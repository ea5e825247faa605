package http

import (
	"campus-advisor/internal/profile"
	"campus-advisor/pkg/log"
)

type handler struct {
	l  log.Logger
	uc profile.UseCase
}

// New creates the HTTP handler for registration and profile management.
func New(l log.Logger, uc profile.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
