package usecase

import (
	"campus-advisor/internal/profile"
	"campus-advisor/internal/profile/repository"
	"campus-advisor/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ profile.UseCase = (*implUseCase)(nil)

// New creates the profile UseCase.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
