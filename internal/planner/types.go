package planner

import "time"

const (
	BlockStudy    = "study"
	BlockReview   = "review"
	BlockExamPrep = "exam_prep"
)

const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
)

// Block is one study session. Start and End carry the concrete date the
// block lands on in the planner's timezone.
type Block struct {
	Day       string
	StartTime string
	EndTime   string
	Subject   string
	Type      string
	Start     time.Time
	End       time.Time
}

type StudyScheduleInput struct {
	UserID         string
	Courses        []string
	HoursPerWeek   float64
	PreferredTimes []string
	BreakMinutes   int
	SyncCalendar   bool
}

type ExamPrepInput struct {
	UserID string
	// ExamDate is YYYY-MM-DD or a relative phrase such as "in 5 days".
	ExamDate     string
	Subject      string
	DaysToStudy  int
	HoursPerDay  int
	SyncCalendar bool
}

// CalendarSync reports the optional calendar push. Error is set when the
// push was requested but did not fully succeed.
type CalendarSync struct {
	Created int
	Links   []string
	Error   string
}

type ScheduleOutput struct {
	Blocks   []Block
	Calendar *CalendarSync
}
