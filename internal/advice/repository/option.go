package repository

type CreateEntryOptions struct {
	UserID    string
	Category  string
	Title     string
	Content   string
	AgentType string
	Priority  string
	Metadata  string
}

// ListEntriesOptions filters by user and optionally category, newest first.
type ListEntriesOptions struct {
	UserID   string
	Category string
	Limit    int
}
