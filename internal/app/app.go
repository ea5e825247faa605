// Package app wires configuration into ready-to-use domain use cases.
// Every binary builds the same graph; only the delivery differs.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"campus-advisor/config"
	"campus-advisor/internal/advice"
	adviceSqlite "campus-advisor/internal/advice/repository/sqlite"
	adviceUC "campus-advisor/internal/advice/usecase"
	"campus-advisor/internal/agent"
	"campus-advisor/internal/agent/orchestrator"
	"campus-advisor/internal/chat"
	chatRepo "campus-advisor/internal/chat/repository"
	chatCache "campus-advisor/internal/chat/repository/cache"
	chatRedis "campus-advisor/internal/chat/repository/redis"
	chatSqlite "campus-advisor/internal/chat/repository/sqlite"
	chatUC "campus-advisor/internal/chat/usecase"
	"campus-advisor/internal/planner"
	plannerUC "campus-advisor/internal/planner/usecase"
	"campus-advisor/internal/profile"
	profileSqlite "campus-advisor/internal/profile/repository/sqlite"
	profileUC "campus-advisor/internal/profile/usecase"
	"campus-advisor/internal/resource"
	resourceSqlite "campus-advisor/internal/resource/repository/sqlite"
	resourceUC "campus-advisor/internal/resource/usecase"
	"campus-advisor/pkg/datemath"
	"campus-advisor/pkg/gcalendar"
	"campus-advisor/pkg/llmprovider"
	"campus-advisor/pkg/log"
	"campus-advisor/pkg/sqlite"
)

// App is the assembled service.
type App struct {
	DB       *sql.DB
	Chat     chat.UseCase
	Profile  profile.UseCase
	Advice   advice.UseCase
	Resource resource.UseCase
	Planner  planner.UseCase

	closers []func() error
}

// Build opens storage, connects optional infrastructure and assembles the
// use cases. Optional pieces (Redis, Google Calendar) degrade with a warning.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	a := &App{}

	// 1. Storage
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	a.DB = db
	a.closers = append(a.closers, db.Close)

	// 2. LLM
	manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, l)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init llm providers: %w", err)
	}
	gen := llmprovider.NewGenerator(manager, l)
	orch := orchestrator.NewDefault(gen, gen, agent.Config{
		PromptTurns: cfg.Chat.PromptTurns,
		MaxTokens:   cfg.Chat.GenerationMaxTokens,
		// General replies see one more turn than domain ones.
		GeneralPromptTurns: cfg.Chat.PromptTurns + 1,
		GeneralMaxTokens:   cfg.Chat.GeneralMaxTokens,
	}, l)

	// 3. Domains
	a.Profile = profileUC.New(profileSqlite.New(db, l), l)
	a.Advice = adviceUC.New(adviceSqlite.New(db, l), l, cfg.Chat.DefaultAdviceLimit)
	a.Resource = resourceUC.New(resourceSqlite.New(db, l), l)

	a.Chat = chatUC.New(chatUC.Deps{
		Repo:      chatSqlite.New(db, l),
		Cache:     a.historyCache(ctx, cfg, l),
		Processor: orch,
		Profiles:  a.Profile,
		Advice:    a.Advice,
		Logger:    l,
		Config: chat.Config{
			HistoryWindow:       cfg.Chat.HistoryWindow,
			DefaultHistoryLimit: cfg.Chat.DefaultHistoryLimit,
			AdviceThreshold:     cfg.Chat.AdviceThreshold,
		},
	})

	dates, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}
	a.Planner = plannerUC.New(dates, calendar(ctx, cfg, l), l)

	return a, nil
}

func (a *App) historyCache(ctx context.Context, cfg *config.Config, l log.Logger) chatRepo.HistoryCache {
	if cfg.Redis.URL != "" {
		rc, err := chatRedis.Connect(ctx, cfg.Redis.URL, cfg.Redis.CacheTTL, l)
		if err == nil {
			l.Info(ctx, "History cache: redis")
			a.closers = append(a.closers, rc.Close)
			return rc
		}
		l.Warnf(ctx, "Redis not available, using in-process cache: %v", err)
	}
	l.Info(ctx, "History cache: in-process LRU")
	return chatCache.New(cfg.Chat.HistoryCacheSize, cfg.Chat.HistoryCacheTTL)
}

func calendar(ctx context.Context, cfg *config.Config, l log.Logger) plannerUC.Calendar {
	if cfg.GoogleCalendar.CredentialsPath == "" {
		return nil
	}
	c, err := gcalendar.New(ctx, gcalendar.Config{
		CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
		TokenPath:       cfg.GoogleCalendar.TokenPath,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
		Timezone:        cfg.GoogleCalendar.Timezone,
	})
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		l.Warn(ctx, "Run `advisorctl calendar-auth` to generate a token")
		return nil
	}
	l.Info(ctx, "Google Calendar initialized")
	return c
}

// Close releases everything Build opened, last opened first.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
