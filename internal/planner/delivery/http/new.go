package http

import (
	"campus-advisor/internal/planner"
	"campus-advisor/pkg/log"
)

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
