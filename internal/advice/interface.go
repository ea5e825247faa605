package advice

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Log(ctx context.Context, input LogInput) (Entry, error)
	// List returns entries newest first.
	List(ctx context.Context, input ListInput) (ListOutput, error)
}
