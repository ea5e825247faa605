package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"campus-advisor/internal/advice"
	"campus-advisor/internal/chat"
	"campus-advisor/internal/middleware"
	"campus-advisor/internal/planner"
	"campus-advisor/internal/profile"
	"campus-advisor/internal/resource"
	"campus-advisor/pkg/log"
)

const EnvironmentProduction = "production"

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	ready       func(ctx context.Context) error

	// Domains. A nil use case leaves its routes unregistered.
	chatUC     chat.UseCase
	profileUC  profile.UseCase
	adviceUC   advice.UseCase
	resourceUC resource.UseCase
	plannerUC  planner.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int
	// ReadyCheck backs /ready, typically a database ping. Optional.
	ReadyCheck func(ctx context.Context) error

	Chat     chat.UseCase
	Profile  profile.UseCase
	Advice   advice.UseCase
	Resource resource.UseCase
	Planner  planner.UseCase
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          middleware.New(logger, cfg.RateLimitPerMin),
		ready:       cfg.ReadyCheck,
		chatUC:      cfg.Chat,
		profileUC:   cfg.Profile,
		adviceUC:    cfg.Advice,
		resourceUC:  cfg.Resource,
		plannerUC:   cfg.Planner,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
