package usecase

import (
	"context"
	"errors"

	"campus-advisor/internal/agent"
	"campus-advisor/internal/chat"
	repo "campus-advisor/internal/chat/repository"
	"campus-advisor/internal/profile"
)

// BuildContext gathers the profile and the last HistoryWindow turns, oldest
// first. Missing data yields an emptier context, never an error.
func (uc *implUseCase) BuildContext(ctx context.Context, userID string) agent.Context {
	c := agent.Context{UserID: userID, History: []agent.Turn{}}

	if uc.profiles != nil {
		out, err := uc.profiles.Detail(ctx, userID)
		switch {
		case err == nil:
			c.Profile = toAgentProfile(out.User)
		case errors.Is(err, profile.ErrUserNotFound):
		default:
			uc.l.Warnf(ctx, "%s: profile: %v", chat.LogPrefixContext, err)
		}
	}

	msgs, err := uc.recent(ctx, userID)
	if err != nil {
		uc.l.Warnf(ctx, "%s: history: %v", chat.LogPrefixContext, err)
		return c
	}
	for _, m := range msgs {
		c.History = append(c.History, agent.Turn{Role: m.Role, Content: m.Content})
	}
	return c
}

// crisisContext carries only the profile, read from the local store. The
// history cache is skipped.
func (uc *implUseCase) crisisContext(ctx context.Context, userID string) agent.Context {
	c := agent.Context{UserID: userID, History: []agent.Turn{}}
	if uc.profiles == nil {
		return c
	}
	if out, err := uc.profiles.Detail(ctx, userID); err == nil {
		c.Profile = toAgentProfile(out.User)
	}
	return c
}

func (uc *implUseCase) recent(ctx context.Context, userID string) ([]chat.Message, error) {
	if uc.cache != nil {
		if msgs, ok := uc.cache.Get(ctx, userID); ok {
			return msgs, nil
		}
	}

	msgs, err := uc.repo.ListRecent(ctx, repo.ListRecentOptions{UserID: userID, Limit: uc.cfg.HistoryWindow})
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		uc.cache.Set(ctx, userID, msgs)
	}
	return msgs, nil
}

func toAgentProfile(u profile.User) *agent.Profile {
	return &agent.Profile{
		Name:        u.Name,
		Major:       u.Profile.Major,
		Year:        u.Profile.Year,
		Interests:   u.Profile.Interests,
		StressLevel: u.Profile.StressLevel,
		Goals:       u.Profile.Goals,
	}
}
