package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISODate is the absolute date layout accepted alongside relative phrases.
const ISODate = "2006-01-02"

// ErrUnrecognized is returned for phrases the parser does not understand.
var ErrUnrecognized = errors.New("unrecognized date")

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parser converts absolute or relative date strings to midnight in a
// fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// An empty timezone means UTC.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts "2025-05-12", "today", "tomorrow", "in 3 days",
// "next friday" or a bare weekday to the start of that day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(input string, baseTime time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(input))

	if t, err := time.ParseInLocation(ISODate, s, p.location); err == nil {
		return t, nil
	}

	switch s {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(s, "in ") {
		return p.parseInDuration(s, baseTime)
	}

	if strings.HasPrefix(s, "next ") {
		return p.parseWeekday(strings.TrimPrefix(s, "next "), baseTime)
	}

	if _, ok := weekdays[s]; ok {
		return p.parseWeekday(s, baseTime)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, input)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(s string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(s)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, s)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseWeekday returns the next occurrence of the weekday, strictly after baseTime's day.
func (p *Parser) parseWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	target, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// At returns the given day at hh:mm in the parser's timezone.
func (p *Parser) At(day time.Time, hour, minute int) time.Time {
	d := day.In(p.location)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, p.location)
}

// DaysUntil counts calendar days from baseTime's day to target's day.
func (p *Parser) DaysUntil(target, baseTime time.Time) int {
	from := p.StartOfDay(baseTime)
	to := p.StartOfDay(target)
	return int(to.Sub(from).Hours()+12) / 24
}
