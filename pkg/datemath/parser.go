package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reAhead = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	reAgo   = regexp.MustCompile(`^(\d+) (day|days|week|weeks|month|months) ago$`)
)

// Absolute layouts accepted by Resolve, tried in order. Date-only layouts
// produce all-day results.
var layouts = []struct {
	layout string
	allDay bool
}{
	{time.RFC3339, false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04", false},
	{"2006-01-02", true},
}

// Parser converts absolute and relative date strings to time.Time values in
// a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
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

// Resolve parses an absolute date ("2025-01-14", RFC3339) or, failing that,
// a relative phrase anchored at baseTime.
func (p *Parser) Resolve(value string, baseTime time.Time) (ParseResult, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return ParseResult{}, fmt.Errorf("empty date")
	}

	for _, l := range layouts {
		if t, err := time.ParseInLocation(l.layout, value, p.location); err == nil {
			return ParseResult{AbsoluteTime: t, IsAllDay: l.allDay}, nil
		}
	}

	t, err := p.Parse(value, baseTime)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{AbsoluteTime: t, IsAllDay: true}, nil
}

// Parse converts a relative date string to the start of the matching day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if m := reAhead.FindStringSubmatch(relative); m != nil {
		return p.shift(m[1], m[2], 1, baseTime)
	}
	if m := reAgo.FindStringSubmatch(relative); m != nil {
		return p.shift(m[1], m[2], -1, baseTime)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return baseTime, fmt.Errorf("unrecognized date %q", relative)
}

// shift moves baseTime by amount units in direction sign.
func (p *Parser) shift(amount, unit string, sign int, baseTime time.Time) (time.Time, error) {
	n, err := strconv.Atoi(amount)
	if err != nil {
		return baseTime, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	n *= sign

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, n)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, n*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, n, 0)), nil
	}
	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - baseTime.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
