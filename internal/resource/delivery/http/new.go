package http

import (
	"campus-advisor/internal/resource"
	"campus-advisor/pkg/log"
)

type handler struct {
	l  log.Logger
	uc resource.UseCase
}

func New(l log.Logger, uc resource.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
