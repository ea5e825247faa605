package orchestrator

import (
	"campus-advisor/internal/agent"
	"campus-advisor/internal/router"
)

// Input is one message plus the context built for it.
type Input struct {
	UserID    string
	SessionID string
	Message   string
	Context   agent.Context
}

// Result is the reply together with the routing outcome.
type Result struct {
	Reply       agent.Reply
	Intent      router.Intent
	HandlerName string
	Decision    router.Decision
}
