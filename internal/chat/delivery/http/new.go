package http

import (
	"campus-advisor/internal/chat"
	"campus-advisor/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
