package http

import (
	"time"

	"campus-advisor/internal/planner"
)

type studyScheduleReq struct {
	Courses        []string `json:"courses" binding:"required,min=1"`
	HoursPerWeek   float64  `json:"hours_per_week" binding:"required,gt=0"`
	PreferredTimes []string `json:"preferred_times"`
	BreakMinutes   int      `json:"break_minutes" binding:"omitempty,min=0,max=120"`
	SyncCalendar   bool     `json:"sync_calendar"`
}

func (r studyScheduleReq) toInput(userID string) planner.StudyScheduleInput {
	return planner.StudyScheduleInput{
		UserID:         userID,
		Courses:        r.Courses,
		HoursPerWeek:   r.HoursPerWeek,
		PreferredTimes: r.PreferredTimes,
		BreakMinutes:   r.BreakMinutes,
		SyncCalendar:   r.SyncCalendar,
	}
}

type examPrepReq struct {
	ExamDate     string `json:"exam_date" binding:"required"`
	Subject      string `json:"subject" binding:"required"`
	DaysToStudy  int    `json:"days_to_study"`
	HoursPerDay  int    `json:"hours_per_day"`
	SyncCalendar bool   `json:"sync_calendar"`
}

func (r examPrepReq) toInput(userID string) planner.ExamPrepInput {
	return planner.ExamPrepInput{
		UserID:       userID,
		ExamDate:     r.ExamDate,
		Subject:      r.Subject,
		DaysToStudy:  r.DaysToStudy,
		HoursPerDay:  r.HoursPerDay,
		SyncCalendar: r.SyncCalendar,
	}
}

type blockResp struct {
	Day       string    `json:"day"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Subject   string    `json:"subject"`
	Type      string    `json:"type"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

type calendarResp struct {
	Created int      `json:"created"`
	Links   []string `json:"links,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type scheduleResp struct {
	Schedule []blockResp   `json:"schedule"`
	Total    int           `json:"total"`
	Calendar *calendarResp `json:"calendar,omitempty"`
}

func newScheduleResp(out planner.ScheduleOutput) scheduleResp {
	blocks := make([]blockResp, len(out.Blocks))
	for i, b := range out.Blocks {
		blocks[i] = blockResp{
			Day:       b.Day,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Subject:   b.Subject,
			Type:      b.Type,
			Start:     b.Start,
			End:       b.End,
		}
	}
	resp := scheduleResp{Schedule: blocks, Total: len(blocks)}
	if out.Calendar != nil {
		resp.Calendar = &calendarResp{Created: out.Calendar.Created, Links: out.Calendar.Links, Error: out.Calendar.Error}
	}
	return resp
}
