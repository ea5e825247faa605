package router

import (
	"context"

	"campus-advisor/pkg/log"
)

// Probe is a handler's capability check. CanHandle must be pure.
type Probe interface {
	Intent() Intent
	CanHandle(message string) bool
}

// Classifier picks one of categories for text and never fails: on any
// problem it returns the last category.
type Classifier interface {
	Classify(ctx context.Context, text string, categories []string, instruction string) string
}

// Router decides which handler answers a message.
type Router interface {
	Route(ctx context.Context, message string) Decision
}

type implRouter struct {
	probes     []Probe
	classifier Classifier
	l          log.Logger
}

var _ Router = (*implRouter)(nil)

// New creates a Router. With no probes the KeywordTables are used.
func New(classifier Classifier, l log.Logger, probes ...Probe) Router {
	if len(probes) == 0 {
		probes = KeywordProbes()
	}
	return &implRouter{
		probes:     probes,
		classifier: classifier,
		l:          l,
	}
}
