package planner

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const (
	blockHours = 2

	MaxCourses      = 12
	MaxHoursPerWeek = 80
	MaxDaysToStudy  = 30
	MaxHoursPerDay  = 12
)

var weekOrder = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var timeSlots = map[string][]int{
	TimeMorning:   {8, 10},
	TimeAfternoon: {13, 15, 17},
	TimeEvening:   {19, 21},
}

// DefaultPreferredTimes is used when the caller states no preference.
var DefaultPreferredTimes = []string{TimeMorning, TimeAfternoon, TimeEvening}

func ValidTimeOfDay(t string) bool {
	_, ok := timeSlots[t]
	return ok
}

// WeeklySchedule spreads 2-hour blocks for each course round-robin across
// the week starting at weekStart (a Monday). Each course gets
// ceil(hoursPerWeek/len(courses)/2) blocks; its first block is a study block
// and the rest are reviews. The result is ordered by day then start time.
func WeeklySchedule(courses []string, hoursPerWeek float64, preferred []string, weekStart time.Time) []Block {
	if len(courses) == 0 || hoursPerWeek <= 0 {
		return nil
	}
	if len(preferred) == 0 {
		preferred = DefaultPreferredTimes
	}
	perCourse := int(math.Ceil(hoursPerWeek / float64(len(courses)) / blockHours))

	type placed struct {
		day int
		b   Block
	}
	var (
		blocks   []placed
		dayIndex int
	)
	for _, course := range courses {
		for i := 0; i < perCourse; i++ {
			day := dayIndex % len(weekOrder)
			slots := timeSlots[preferred[i%len(preferred)]]
			hour := slots[i%len(slots)]

			kind := BlockReview
			if i == 0 {
				kind = BlockStudy
			}
			date := weekStart.AddDate(0, 0, day)
			blocks = append(blocks, placed{day: day, b: newBlock(weekOrder[day], date, hour, blockHours, course, kind)})
			dayIndex++
		}
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].day != blocks[j].day {
			return blocks[i].day < blocks[j].day
		}
		return blocks[i].b.StartTime < blocks[j].b.StartTime
	})

	out := make([]Block, len(blocks))
	for i, p := range blocks {
		out[i] = p.b
	}
	return out
}

// ExamPrepSchedule plans daysToStudy days ending the day before examDay.
// Each day has a morning session at 09:00 of floor(hoursPerDay/2) hours,
// plus an afternoon review at 14:00 of ceil(hoursPerDay/2) hours when
// hoursPerDay exceeds 2. The last three days are exam prep.
func ExamPrepSchedule(examDay time.Time, subject string, daysToStudy, hoursPerDay int) []Block {
	var out []Block
	for i := daysToStudy; i > 0; i-- {
		date := examDay.AddDate(0, 0, -i)
		label := date.Format("Monday (Jan 02)")

		kind := BlockExamPrep
		if i > 3 {
			kind = BlockStudy
		}
		out = append(out, newBlock(label, date, 9, hoursPerDay/2, subject, kind))
		if hoursPerDay > 2 {
			out = append(out, newBlock(label, date, 14, (hoursPerDay+1)/2, subject, BlockReview))
		}
	}
	return out
}

func newBlock(day string, date time.Time, hour, length int, subject, kind string) Block {
	start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
	return Block{
		Day:       day,
		StartTime: clock(hour),
		EndTime:   clock(hour + length),
		Subject:   subject,
		Type:      kind,
		Start:     start,
		End:       start.Add(time.Duration(length) * time.Hour),
	}
}

func clock(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
