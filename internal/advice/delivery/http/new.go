package http

import (
	"campus-advisor/internal/advice"
	"campus-advisor/pkg/log"
)

type handler struct {
	l  log.Logger
	uc advice.UseCase
}

func New(l log.Logger, uc advice.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
