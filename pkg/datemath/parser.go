package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	offsetPattern = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

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

// Parser resolves day phrases ("today", "in 3 days", "next friday",
// "2024-03-10") to the start of that day in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone, e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse resolves phrase relative to now and returns midnight of the day it
// names. Phrases are case-insensitive:
//
//	today, tomorrow, yesterday
//	in N day(s) | week(s) | month(s)
//	next <weekday>   the first such day strictly after today
//	this <weekday>   the first such day from today on
//	end of week      the coming Sunday, today if it is Sunday
//	end of month     the last day of the current month
//	any absolute date ParseInstant understands
func (p *Parser) Parse(phrase string, now time.Time) (time.Time, error) {
	phrase = strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
	today := p.startOfDay(now)

	switch phrase {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "end of week":
		return p.weekdayFrom(today, time.Sunday, 0), nil
	case "end of month":
		return today.AddDate(0, 1, -today.Day()), nil
	}

	switch {
	case strings.HasPrefix(phrase, "in "):
		return p.parseOffset(phrase, today)
	case strings.HasPrefix(phrase, "next "):
		return p.parseWeekday(strings.TrimPrefix(phrase, "next "), today, 1)
	case strings.HasPrefix(phrase, "this "):
		return p.parseWeekday(strings.TrimPrefix(phrase, "this "), today, 0)
	}

	if t, ok := p.ParseDate(phrase); ok {
		return p.startOfDay(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPhrase, phrase)
}

// parseOffset handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseOffset(phrase string, today time.Time) (time.Time, error) {
	m := offsetPattern.FindStringSubmatch(phrase)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidAmount, phrase)
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidAmount, phrase)
	}

	switch unit := strings.TrimSuffix(m[2], "s"); unit {
	case "week":
		return today.AddDate(0, 0, 7*n), nil
	case "month":
		return today.AddDate(0, n, 0), nil
	default:
		return today.AddDate(0, 0, n), nil
	}
}

// parseWeekday resolves a weekday name at least minAhead days after today.
func (p *Parser) parseWeekday(name string, today time.Time, minAhead int) (time.Time, error) {
	wd, ok := weekdays[name]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownWeekday, name)
	}
	return p.weekdayFrom(today, wd, minAhead), nil
}

func (p *Parser) weekdayFrom(today time.Time, wd time.Weekday, minAhead int) time.Time {
	ahead := (int(wd) - int(today.Weekday()) + 7) % 7
	if ahead < minAhead {
		ahead += 7
	}
	return today.AddDate(0, 0, ahead)
}

// startOfDay returns midnight of t's day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 on day's calendar date in the parser's timezone.
// Days are not always 24 hours long, so this never adds a fixed duration.
func (p *Parser) EndOfDay(day time.Time) time.Time {
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, p.location)
}
