package usecase

import (
	"context"
	"strings"

	"campus-advisor/internal/advice"
	repo "campus-advisor/internal/advice/repository"
)

func (uc *implUseCase) Log(ctx context.Context, input advice.LogInput) (advice.Entry, error) {
	if input.UserID == "" {
		return advice.Entry{}, advice.ErrMissingUser
	}
	if strings.TrimSpace(input.Content) == "" {
		return advice.Entry{}, advice.ErrEmptyContent
	}
	if !advice.ValidCategory(input.Category) {
		return advice.Entry{}, advice.ErrInvalidCategory
	}

	e, err := uc.repo.CreateEntry(ctx, repo.CreateEntryOptions{
		UserID:    input.UserID,
		Category:  input.Category,
		Title:     input.Title,
		Content:   input.Content,
		AgentType: input.AgentType,
		Priority:  input.Priority,
		Metadata:  input.Metadata,
	})
	if err != nil {
		uc.l.Errorf(ctx, "advice.usecase.Log: CreateEntry: %v", err)
		return advice.Entry{}, err
	}
	return e, nil
}

func (uc *implUseCase) List(ctx context.Context, input advice.ListInput) (advice.ListOutput, error) {
	if input.UserID == "" {
		return advice.ListOutput{}, advice.ErrMissingUser
	}
	if input.Category != "" && !advice.ValidCategory(input.Category) {
		return advice.ListOutput{}, advice.ErrInvalidCategory
	}

	limit := input.Limit
	if limit <= 0 {
		limit = uc.defaultLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	entries, err := uc.repo.ListEntries(ctx, repo.ListEntriesOptions{
		UserID:   input.UserID,
		Category: input.Category,
		Limit:    limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "advice.usecase.List: ListEntries: %v", err)
		return advice.ListOutput{}, err
	}
	return advice.ListOutput{Entries: entries}, nil
}
