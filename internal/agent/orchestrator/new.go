package orchestrator

import (
	"campus-advisor/internal/agent"
	"campus-advisor/internal/router"
	pkgLog "campus-advisor/pkg/log"
)

// Orchestrator routes a message and delegates it to one handler. It owns no
// storage; persistence is the caller's post-reply hook.
type Orchestrator struct {
	router   router.Router
	handlers map[string]agent.Handler
	l        pkgLog.Logger
}

func New(r router.Router, l pkgLog.Logger, handlers ...agent.Handler) *Orchestrator {
	o := &Orchestrator{
		router:   r,
		handlers: make(map[string]agent.Handler, len(handlers)),
		l:        l,
	}
	for _, h := range handlers {
		o.handlers[h.Name()] = h
	}
	return o
}

// NewDefault wires the four standard handlers and a router whose probes are
// the domain handlers themselves.
func NewDefault(gen agent.Generator, clf router.Classifier, cfg agent.Config, l pkgLog.Logger) *Orchestrator {
	academic := agent.NewAcademicHandler(gen, cfg, l)
	wellness := agent.NewWellnessHandler(gen, cfg, l)
	campus := agent.NewCampusLifeHandler(gen, cfg, l)
	general := agent.NewGeneralHandler(gen, cfg, l)

	r := router.New(clf, l, academic, wellness, campus)
	return New(r, l, academic, wellness, campus, general)
}
