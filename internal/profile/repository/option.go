package repository

// CreateUserOptions holds parameters for inserting a user and an empty profile.
type CreateUserOptions struct {
	Name        string
	Email       string
	Major       string
	Year        string
	Interests   []string
	StressLevel string
}

// GetOneUserOptions filters by ID or Email. ID wins when both are set.
type GetOneUserOptions struct {
	ID    string
	Email string
}

// UpdateUserOptions carries a partial update. Nil fields are untouched.
type UpdateUserOptions struct {
	ID          string
	Name        *string
	Major       *string
	Year        *string
	Interests   []string
	StressLevel *string
	Goals       *string
}
