package resource

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// List returns resources ordered by name.
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// Seed upserts the embedded catalog, keyed by name.
	Seed(ctx context.Context) (SeedOutput, error)
}
