package profile

import "time"

// Academic years a profile may carry.
const (
	YearFreshman  = "Freshman"
	YearSophomore = "Sophomore"
	YearJunior    = "Junior"
	YearSenior    = "Senior"
	YearGraduate  = "Graduate"
)

// Stress labels accepted besides a 0..10 score.
const (
	StressLow    = "low"
	StressMedium = "medium"
	StressHigh   = "high"

	DefaultStressLevel = StressMedium
)

// User is a registered student together with their profile.
type User struct {
	ID        string
	Email     string
	Name      string
	Profile   Profile
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile holds what the advisor knows about a student.
type Profile struct {
	Major       string
	Year        string
	Interests   []string
	StressLevel string
	Goals       string
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type RegisterInput struct {
	Name      string
	Email     string
	Major     string
	Year      string
	Interests []string
}

// UpdateInput is a partial update. Nil fields are left unchanged.
type UpdateInput struct {
	UserID      string
	Name        *string
	Major       *string
	Year        *string
	Interests   []string
	StressLevel *string
	Goals       *string
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	User User
}

type DetailOutput struct {
	User User
}

type UpdateOutput struct {
	User User
}
