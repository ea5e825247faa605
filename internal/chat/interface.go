package chat

import (
	"context"

	"campus-advisor/internal/agent"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Ask never fails once input is valid. Generation problems surface as
	// canned or apology replies.
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
	History(ctx context.Context, input HistoryInput) (HistoryOutput, error)
	Clear(ctx context.Context, userID string) error
	// Stop cancels the caller's in-flight Ask calls and reports how many.
	Stop(ctx context.Context, userID string) int
	BuildContext(ctx context.Context, userID string) agent.Context
}
