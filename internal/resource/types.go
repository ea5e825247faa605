package resource

import "time"

const (
	CategoryClub     = "club"
	CategoryService  = "service"
	CategorySupport  = "support"
	CategoryFacility = "facility"
	CategoryEvent    = "event"
)

// Resource is one entry of the campus catalog.
type Resource struct {
	ID          string
	Name        string
	Category    string
	Description string
	Location    string
	ContactInfo string
	Website     string
	Hours       string
	Tags        []string
	CreatedAt   time.Time
}

// ListInput filters the catalog. Empty fields match everything.
type ListInput struct {
	Category string
	Tag      string
}

type ListOutput struct {
	Resources []Resource
}

type SeedOutput struct {
	Seeded int
}
