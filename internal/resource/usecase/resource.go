package usecase

import (
	"context"
	"strings"

	"campus-advisor/internal/resource"
	repo "campus-advisor/internal/resource/repository"
)

func (uc *implUseCase) List(ctx context.Context, input resource.ListInput) (resource.ListOutput, error) {
	category := strings.ToLower(strings.TrimSpace(input.Category))
	if category != "" && !resource.ValidCategory(category) {
		return resource.ListOutput{}, resource.ErrInvalidCategory
	}

	items, err := uc.repo.ListResources(ctx, repo.ListResourcesOptions{
		Category: category,
		Tag:      strings.TrimSpace(input.Tag),
	})
	if err != nil {
		uc.l.Errorf(ctx, "resource.usecase.List: ListResources: %v", err)
		return resource.ListOutput{}, err
	}
	return resource.ListOutput{Resources: items}, nil
}

func (uc *implUseCase) Seed(ctx context.Context) (resource.SeedOutput, error) {
	items, err := uc.catalog()
	if err != nil {
		uc.l.Errorf(ctx, "resource.usecase.Seed: catalog: %v", err)
		return resource.SeedOutput{}, err
	}

	n, err := uc.repo.UpsertResources(ctx, items)
	if err != nil {
		uc.l.Errorf(ctx, "resource.usecase.Seed: UpsertResources: %v", err)
		return resource.SeedOutput{}, err
	}
	uc.l.Infof(ctx, "resource.usecase.Seed: %d resources", n)
	return resource.SeedOutput{Seeded: n}, nil
}
