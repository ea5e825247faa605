package repository

import (
	"context"

	"campus-advisor/internal/resource"
)

type Repository interface {
	// UpsertResources inserts or updates by name in one transaction.
	UpsertResources(ctx context.Context, items []resource.Resource) (int, error)
	ListResources(ctx context.Context, opt ListResourcesOptions) ([]resource.Resource, error)
}
