// Package agent holds the domain handlers that turn a routed message into a
// reply.
package agent

import (
	"context"

	"campus-advisor/internal/router"
	"campus-advisor/pkg/llmprovider"
)

// Generator is the text-generation boundary every handler depends on.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts llmprovider.Options) (string, error)
}

// Handler turns a message plus context into a reply.
type Handler interface {
	Name() string
	Intent() router.Intent
	CanHandle(message string) bool
	Process(ctx context.Context, message string, c Context) (Reply, error)
}

// Turn roles as stored in history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one prior message in the conversation.
type Turn struct {
	Role    string
	Content string
}

// Profile is the subset of the student profile handlers see.
type Profile struct {
	Name        string
	Major       string
	Year        string
	Interests   []string
	StressLevel string
	Goals       string
}

// Context is built fresh per request and is read-only to handlers.
// History is oldest first.
type Context struct {
	UserID  string
	Profile *Profile
	History []Turn
}

// Reply is what a handler produces.
type Reply struct {
	Content    string
	Confidence float64
	ToolsUsed  []string
	Metadata   Metadata
}

// Metadata is the closed set of flags a reply may carry.
type Metadata struct {
	AgentType           string `json:"agent_type"`
	SupportType         string `json:"support_type,omitempty"`
	Severity            string `json:"severity,omitempty"`
	CrisisDetected      bool   `json:"crisis_detected,omitempty"`
	ShowEmergencyPopup  bool   `json:"show_emergency_popup,omitempty"`
	DetectedStressLevel *int   `json:"detected_stress_level,omitempty"`
	// Degraded marks a canned reply served because generation failed.
	Degraded bool   `json:"degraded,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Config tunes generation for every handler.
type Config struct {
	PromptTurns        int
	GeneralPromptTurns int
	Temperature        float64
	MaxTokens          int
	GeneralMaxTokens   int
}

// DefaultConfig matches the values the advisor has always used.
func DefaultConfig() Config {
	return Config{
		PromptTurns:        5,
		GeneralPromptTurns: 6,
		Temperature:        0.7,
		MaxTokens:          512,
		GeneralMaxTokens:   400,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PromptTurns <= 0 {
		c.PromptTurns = d.PromptTurns
	}
	if c.GeneralPromptTurns <= 0 {
		c.GeneralPromptTurns = d.GeneralPromptTurns
	}
	if c.Temperature <= 0 {
		c.Temperature = d.Temperature
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = d.MaxTokens
	}
	if c.GeneralMaxTokens <= 0 {
		c.GeneralMaxTokens = d.GeneralMaxTokens
	}
	return c
}
