package usecase

import (
	"campus-advisor/internal/advice"
	"campus-advisor/internal/advice/repository"
	"campus-advisor/pkg/log"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type implUseCase struct {
	repo         repository.Repository
	l            log.Logger
	defaultLimit int
}

var _ advice.UseCase = (*implUseCase)(nil)

// New creates the advice UseCase. defaultLimit <= 0 means DefaultListLimit.
func New(repo repository.Repository, l log.Logger, defaultLimit int) *implUseCase {
	if defaultLimit <= 0 {
		defaultLimit = DefaultListLimit
	}
	return &implUseCase{repo: repo, l: l, defaultLimit: defaultLimit}
}
