package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"campus-advisor/internal/profile"
	repo "campus-advisor/internal/profile/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, userID string) (profile.DetailOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: userID})
	if err != nil {
		return profile.DetailOutput{}, uc.notFound(err)
	}
	return profile.DetailOutput{User: u}, nil
}

// Update applies a partial update. An empty name is ignored, an empty year
// clears it.
func (uc *implUseCase) Update(ctx context.Context, input profile.UpdateInput) (profile.UpdateOutput, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			input.Name = nil
		} else if !profile.ValidName(name) {
			return profile.UpdateOutput{}, profile.ErrInvalidName
		} else {
			input.Name = &name
		}
	}
	if input.Year != nil && !profile.ValidYear(*input.Year) {
		return profile.UpdateOutput{}, profile.ErrInvalidYear
	}
	if input.StressLevel != nil {
		level := strings.ToLower(strings.TrimSpace(*input.StressLevel))
		if !profile.ValidStressLevel(level) {
			return profile.UpdateOutput{}, profile.ErrInvalidStressLevel
		}
		input.StressLevel = &level
	}

	u, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:          input.UserID,
		Name:        input.Name,
		Major:       input.Major,
		Year:        input.Year,
		Interests:   input.Interests,
		StressLevel: input.StressLevel,
		Goals:       input.Goals,
	})
	if err != nil {
		uc.l.Errorf(ctx, "profile.usecase.Update: UpdateUser: %v", err)
		return profile.UpdateOutput{}, uc.notFound(err)
	}
	return profile.UpdateOutput{User: u}, nil
}

func (uc *implUseCase) UpdateStressLevel(ctx context.Context, userID string, level int) error {
	if level < 0 || level > 10 {
		return profile.ErrInvalidStressLevel
	}
	if err := uc.repo.UpdateStressLevel(ctx, userID, strconv.Itoa(level)); err != nil {
		return uc.notFound(err)
	}
	return nil
}

func (uc *implUseCase) notFound(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return profile.ErrUserNotFound
	}
	return err
}
