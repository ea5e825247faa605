package repository

import (
	"context"

	"campus-advisor/internal/profile"
)

// Repository is the data store for users and their profiles.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (profile.User, error)
	// GetOneUser returns ErrNotFound when no user matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (profile.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (profile.User, error)
	UpdateStressLevel(ctx context.Context, userID, level string) error
}
