package usecase

import (
	"context"

	"campus-advisor/internal/advice"
	"campus-advisor/internal/agent/orchestrator"
	"campus-advisor/internal/chat"
	"campus-advisor/internal/chat/repository"
	"campus-advisor/internal/profile"
	"campus-advisor/pkg/log"
)

// Processor produces a reply for one message. It must not fail.
type Processor interface {
	ProcessMessage(ctx context.Context, in orchestrator.Input) orchestrator.Result
}

type implUseCase struct {
	repo     repository.Repository
	cache    repository.HistoryCache
	proc     Processor
	profiles profile.UseCase
	advice   advice.UseCase
	l        log.Logger
	cfg      chat.Config
	inflight *inflight
}

var _ chat.UseCase = (*implUseCase)(nil)

// Deps bundles what the chat use case needs. Cache may be nil.
type Deps struct {
	Repo      repository.Repository
	Cache     repository.HistoryCache
	Processor Processor
	Profiles  profile.UseCase
	Advice    advice.UseCase
	Logger    log.Logger
	Config    chat.Config
}

func New(d Deps) *implUseCase {
	cfg := d.Config
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = chat.DefaultHistoryWindow
	}
	if cfg.DefaultHistoryLimit <= 0 {
		cfg.DefaultHistoryLimit = chat.DefaultHistoryLimit
	}
	if cfg.AdviceThreshold <= 0 {
		cfg.AdviceThreshold = advice.DefaultThreshold
	}
	return &implUseCase{
		repo:     d.Repo,
		cache:    d.Cache,
		proc:     d.Processor,
		profiles: d.Profiles,
		advice:   d.Advice,
		l:        d.Logger,
		cfg:      cfg,
		inflight: newInflight(),
	}
}
