package usecase

import (
	"context"
	"time"

	"campus-advisor/internal/planner"
	"campus-advisor/pkg/datemath"
	"campus-advisor/pkg/gcalendar"
	"campus-advisor/pkg/log"
)

const (
	DefaultDaysToStudy = 7
	DefaultHoursPerDay = 4
	reminderMinutes    = 15
)

// Calendar receives planned blocks. *gcalendar.Client satisfies it.
type Calendar interface {
	InsertEvents(ctx context.Context, events []gcalendar.StudyEvent) (gcalendar.SyncResult, error)
}

type implUseCase struct {
	dates *datemath.Parser
	cal   Calendar
	l     log.Logger
	now   func() time.Time
}

var _ planner.UseCase = (*implUseCase)(nil)

// New creates the planner. cal may be nil when no calendar is configured.
func New(dates *datemath.Parser, cal Calendar, l log.Logger) *implUseCase {
	return &implUseCase{dates: dates, cal: cal, l: l, now: time.Now}
}
