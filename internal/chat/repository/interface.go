package repository

import (
	"context"

	"campus-advisor/internal/chat"
)

// Repository is the durable conversation store. Insertion order is
// conversation order.
type Repository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (chat.Message, error)
	// ListRecent returns the newest Limit messages of a user, oldest first.
	ListRecent(ctx context.Context, opt ListRecentOptions) ([]chat.Message, error)
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}

// HistoryCache holds the context window of recent turns per user.
type HistoryCache interface {
	Get(ctx context.Context, userID string) ([]chat.Message, bool)
	Set(ctx context.Context, userID string, msgs []chat.Message)
	Invalidate(ctx context.Context, userID string)
}
