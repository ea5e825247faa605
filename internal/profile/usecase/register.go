package usecase

import (
	"context"
	"errors"
	"strings"

	"campus-advisor/internal/profile"
	repo "campus-advisor/internal/profile/repository"
)

// Register creates a user with a fresh profile. Emails are unique.
func (uc *implUseCase) Register(ctx context.Context, input profile.RegisterInput) (profile.RegisterOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	if !profile.ValidName(input.Name) {
		return profile.RegisterOutput{}, profile.ErrInvalidName
	}
	if !profile.ValidEmail(input.Email) {
		return profile.RegisterOutput{}, profile.ErrInvalidEmail
	}
	if !profile.ValidYear(input.Year) {
		return profile.RegisterOutput{}, profile.ErrInvalidYear
	}

	_, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	switch {
	case err == nil:
		return profile.RegisterOutput{}, profile.ErrEmailTaken
	case !errors.Is(err, repo.ErrNotFound):
		uc.l.Errorf(ctx, "profile.usecase.Register: GetOneUser: %v", err)
		return profile.RegisterOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:        input.Name,
		Email:       input.Email,
		Major:       strings.TrimSpace(input.Major),
		Year:        input.Year,
		Interests:   input.Interests,
		StressLevel: profile.DefaultStressLevel,
	})
	if errors.Is(err, repo.ErrDuplicate) {
		return profile.RegisterOutput{}, profile.ErrEmailTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "profile.usecase.Register: CreateUser: %v", err)
		return profile.RegisterOutput{}, err
	}

	uc.l.Infof(ctx, "profile.usecase.Register: user %s registered", u.ID)
	return profile.RegisterOutput{User: u}, nil
}
