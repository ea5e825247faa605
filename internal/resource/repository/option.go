package repository

// ListResourcesOptions filters by exact category and by a single tag.
type ListResourcesOptions struct {
	Category string
	Tag      string
}
