package profile

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Detail(ctx context.Context, userID string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	// UpdateStressLevel stores a 0..10 score detected from conversation.
	UpdateStressLevel(ctx context.Context, userID string, level int) error
}
