package usecase

import (
	"campus-advisor/internal/resource"
	"campus-advisor/internal/resource/repository"
	"campus-advisor/pkg/log"
)

type implUseCase struct {
	repo    repository.Repository
	l       log.Logger
	catalog func() ([]resource.Resource, error)
}

var _ resource.UseCase = (*implUseCase)(nil)

func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{repo: repo, l: l, catalog: resource.Catalog}
}
