package advice

import "time"

// Categories an advice entry is filed under.
const (
	CategoryStudyPlan      = "study_plan"
	CategoryWellnessCheck  = "wellness_check"
	CategoryTimeManagement = "time_management"
	CategoryCampusResource = "campus_resource"
	CategoryGeneral        = "general"
)

// Priorities, most pressing first.
const (
	PriorityUrgent = "urgent"
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Entry is one durable piece of guidance derived from a reply.
type Entry struct {
	ID        string
	UserID    string
	Category  string
	Title     string
	Content   string
	AgentType string
	Priority  string
	Metadata  string
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type LogInput struct {
	UserID    string
	Category  string
	Title     string
	Content   string
	AgentType string
	Priority  string
	Metadata  string
}

type ListInput struct {
	UserID   string
	Category string
	Limit    int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Entries []Entry
}
