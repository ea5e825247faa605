package planner

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var monday = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func TestWeeklySchedule(t *testing.T) {
	got := WeeklySchedule([]string{"Math", "History"}, 8, []string{TimeMorning, TimeEvening}, monday)

	want := []Block{
		{Day: "Monday", StartTime: "08:00", EndTime: "10:00", Subject: "Math", Type: BlockStudy},
		{Day: "Tuesday", StartTime: "21:00", EndTime: "23:00", Subject: "Math", Type: BlockReview},
		{Day: "Wednesday", StartTime: "08:00", EndTime: "10:00", Subject: "History", Type: BlockStudy},
		{Day: "Thursday", StartTime: "21:00", EndTime: "23:00", Subject: "History", Type: BlockReview},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Block{}, "Start", "End")); diff != "" {
		t.Errorf("WeeklySchedule mismatch (-want +got):\n%s", diff)
	}
	if !got[1].Start.Equal(time.Date(2025, time.March, 11, 21, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", got[1].Start)
	}
	if got[1].End.Sub(got[1].Start) != 2*time.Hour {
		t.Errorf("block length = %v", got[1].End.Sub(got[1].Start))
	}
}

func TestWeeklySchedule_WrapsAndSorts(t *testing.T) {
	// 3 courses x ceil(20/3/2)=4 blocks = 12 blocks over 7 days.
	got := WeeklySchedule([]string{"A", "B", "C"}, 20, nil, monday)
	if len(got) != 12 {
		t.Fatalf("len = %d", len(got))
	}
	dayIdx := map[string]int{}
	for i, d := range weekOrder {
		dayIdx[d] = i
	}
	for i := 1; i < len(got); i++ {
		a, b := got[i-1], got[i]
		if dayIdx[a.Day] > dayIdx[b.Day] || (a.Day == b.Day && a.StartTime > b.StartTime) {
			t.Fatalf("not sorted at %d: %+v then %+v", i, a, b)
		}
	}
	if got[0].Day != "Monday" || got[len(got)-1].Day != "Sunday" {
		t.Errorf("first %s last %s", got[0].Day, got[len(got)-1].Day)
	}
	if WeeklySchedule(nil, 10, nil, monday) != nil {
		t.Error("no courses should plan nothing")
	}
}

func TestExamPrepSchedule(t *testing.T) {
	exam := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	got := ExamPrepSchedule(exam, "Chemistry", 5, 5)

	if len(got) != 10 {
		t.Fatalf("len = %d", len(got))
	}
	first := got[0]
	if first.Day != "Saturday (Mar 15)" || first.StartTime != "09:00" || first.EndTime != "11:00" || first.Type != BlockStudy {
		t.Errorf("first = %+v", first)
	}
	if got[1].StartTime != "14:00" || got[1].EndTime != "17:00" || got[1].Type != BlockReview {
		t.Errorf("afternoon = %+v", got[1])
	}
	// Days 3, 2 and 1 before the exam are exam prep.
	if got[4].Type != BlockExamPrep || got[2].Type != BlockStudy {
		t.Errorf("types = %s %s", got[2].Type, got[4].Type)
	}
	last := got[len(got)-1]
	if last.Day != "Wednesday (Mar 19)" {
		t.Errorf("last day = %s", last.Day)
	}

	short := ExamPrepSchedule(exam, "Chemistry", 2, 2)
	if len(short) != 2 || short[0].EndTime != "10:00" {
		t.Errorf("two hours a day should be morning only: %+v", short)
	}
}
