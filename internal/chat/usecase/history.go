package usecase

import (
	"context"

	"campus-advisor/internal/chat"
	repo "campus-advisor/internal/chat/repository"
)

// History returns the newest Limit turns in chronological order.
func (uc *implUseCase) History(ctx context.Context, input chat.HistoryInput) (chat.HistoryOutput, error) {
	if input.UserID == "" {
		return chat.HistoryOutput{}, chat.ErrMissingUser
	}
	limit := input.Limit
	if limit <= 0 {
		limit = uc.cfg.DefaultHistoryLimit
	}
	if limit > chat.MaxHistoryLimit {
		limit = chat.MaxHistoryLimit
	}

	msgs, err := uc.repo.ListRecent(ctx, repo.ListRecentOptions{UserID: input.UserID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "internal.chat.usecase.History: %v", err)
		return chat.HistoryOutput{}, err
	}
	return chat.HistoryOutput{Messages: msgs, Total: len(msgs)}, nil
}

func (uc *implUseCase) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return chat.ErrMissingUser
	}
	n, err := uc.repo.DeleteByUser(ctx, userID)
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, userID)
	}
	if err != nil {
		uc.l.Errorf(ctx, "internal.chat.usecase.Clear: %v", err)
		return err
	}
	uc.l.Infof(ctx, "internal.chat.usecase.Clear: removed %d messages for %s", n, userID)
	return nil
}

// Stop is best effort: generations already past the point of no return
// still finish and are recorded.
func (uc *implUseCase) Stop(ctx context.Context, userID string) int {
	n := uc.inflight.cancelAll(userID)
	if n > 0 {
		uc.l.Infof(ctx, "internal.chat.usecase.Stop: cancelled %d generation(s) for %s", n, userID)
	}
	return n
}
