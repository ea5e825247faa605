package chat

import (
	"time"

	"campus-advisor/internal/agent"
)

// Message is one persisted conversation turn.
type Message struct {
	ID          string
	UserID      string
	SessionID   string
	Role        string
	Content     string
	Intent      string
	HandlerName string
	// Metadata is the JSON encoded agent.Metadata of assistant turns.
	Metadata  string
	CreatedAt time.Time
}

// Config tunes the conversation use case.
type Config struct {
	// HistoryWindow is how many stored turns feed the handler context.
	HistoryWindow       int
	DefaultHistoryLimit int
	AdviceThreshold     float64
}

// --- UseCase Inputs ---

type AskInput struct {
	UserID    string
	SessionID string
	Message   string
}

type HistoryInput struct {
	UserID string
	Limit  int
}

// --- UseCase Outputs ---

type AskOutput struct {
	Content            string
	Intent             string
	HandlerName        string
	Confidence         float64
	ToolsUsed          []string
	ShowEmergencyPopup bool
	CrisisDetected     bool
	Metadata           agent.Metadata
}

// HistoryOutput lists messages oldest first.
type HistoryOutput struct {
	Messages []Message
	Total    int
}
