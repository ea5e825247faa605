package usecase

import (
	"context"
	"fmt"
	"strings"

	"campus-advisor/internal/planner"
	"campus-advisor/pkg/gcalendar"
)

func (uc *implUseCase) StudySchedule(ctx context.Context, input planner.StudyScheduleInput) (planner.ScheduleOutput, error) {
	courses := make([]string, 0, len(input.Courses))
	for _, c := range input.Courses {
		if c = strings.TrimSpace(c); c != "" {
			courses = append(courses, c)
		}
	}
	if len(courses) == 0 {
		return planner.ScheduleOutput{}, planner.ErrNoCourses
	}
	if len(courses) > planner.MaxCourses {
		return planner.ScheduleOutput{}, planner.ErrTooManyCourses
	}
	if input.HoursPerWeek <= 0 || input.HoursPerWeek > planner.MaxHoursPerWeek {
		return planner.ScheduleOutput{}, planner.ErrInvalidHours
	}

	preferred := make([]string, 0, len(input.PreferredTimes))
	for _, t := range input.PreferredTimes {
		t = strings.ToLower(strings.TrimSpace(t))
		if !planner.ValidTimeOfDay(t) {
			return planner.ScheduleOutput{}, planner.ErrInvalidTimeOfDay
		}
		preferred = append(preferred, t)
	}

	// The plan covers the coming week, starting next Monday.
	weekStart, err := uc.dates.Parse("monday", uc.now())
	if err != nil {
		return planner.ScheduleOutput{}, err
	}

	out := planner.ScheduleOutput{
		Blocks: planner.WeeklySchedule(courses, input.HoursPerWeek, preferred, weekStart),
	}
	if input.SyncCalendar {
		out.Calendar = uc.sync(ctx, out.Blocks, input.BreakMinutes)
	}
	return out, nil
}

func (uc *implUseCase) ExamPrep(ctx context.Context, input planner.ExamPrepInput) (planner.ScheduleOutput, error) {
	subject := strings.TrimSpace(input.Subject)
	if subject == "" {
		return planner.ScheduleOutput{}, planner.ErrMissingSubject
	}

	days := input.DaysToStudy
	if days == 0 {
		days = DefaultDaysToStudy
	}
	if days < 1 || days > planner.MaxDaysToStudy {
		return planner.ScheduleOutput{}, planner.ErrInvalidDaysToStudy
	}
	hours := input.HoursPerDay
	if hours == 0 {
		hours = DefaultHoursPerDay
	}
	if hours < 2 || hours > planner.MaxHoursPerDay {
		return planner.ScheduleOutput{}, planner.ErrInvalidHours
	}

	now := uc.now()
	examDay, err := uc.dates.Parse(input.ExamDate, now)
	if err != nil {
		return planner.ScheduleOutput{}, fmt.Errorf("%w: %v", planner.ErrInvalidExamDate, err)
	}
	until := uc.dates.DaysUntil(examDay, now)
	if until < 1 {
		return planner.ScheduleOutput{}, planner.ErrExamDatePassed
	}
	// Never plan study days before today.
	if days > until {
		days = until
	}

	out := planner.ScheduleOutput{
		Blocks: planner.ExamPrepSchedule(examDay, subject, days, hours),
	}
	if input.SyncCalendar {
		out.Calendar = uc.sync(ctx, out.Blocks, 0)
	}
	return out, nil
}

func (uc *implUseCase) sync(ctx context.Context, blocks []planner.Block, breakMinutes int) *planner.CalendarSync {
	if uc.cal == nil {
		return &planner.CalendarSync{Error: "calendar is not configured"}
	}

	events := make([]gcalendar.StudyEvent, 0, len(blocks))
	for _, b := range blocks {
		desc := fmt.Sprintf("%s session for %s.", blockLabel(b.Type), b.Subject)
		if breakMinutes > 0 {
			desc += fmt.Sprintf(" Take a %d-minute break afterwards.", breakMinutes)
		}
		events = append(events, gcalendar.StudyEvent{
			Summary:         blockLabel(b.Type) + ": " + b.Subject,
			Description:     desc,
			Start:           b.Start,
			End:             b.End,
			ReminderMinutes: reminderMinutes,
		})
	}

	res, err := uc.cal.InsertEvents(ctx, events)
	out := &planner.CalendarSync{Created: res.Created, Links: res.Links}
	if err != nil {
		uc.l.Warnf(ctx, "planner.usecase.sync: %d/%d events created: %v", res.Created, len(events), err)
		out.Error = "some events could not be created"
	}
	return out
}

func blockLabel(kind string) string {
	switch kind {
	case planner.BlockReview:
		return "Review"
	case planner.BlockExamPrep:
		return "Exam prep"
	default:
		return "Study"
	}
}
