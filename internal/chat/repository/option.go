package repository

type CreateMessageOptions struct {
	UserID      string
	SessionID   string
	Role        string
	Content     string
	Intent      string
	HandlerName string
	Metadata    string
}

type ListRecentOptions struct {
	UserID string
	Limit  int
}
