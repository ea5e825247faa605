package repository

import (
	"context"

	"campus-advisor/internal/advice"
)

type Repository interface {
	CreateEntry(ctx context.Context, opt CreateEntryOptions) (advice.Entry, error)
	ListEntries(ctx context.Context, opt ListEntriesOptions) ([]advice.Entry, error)
}
