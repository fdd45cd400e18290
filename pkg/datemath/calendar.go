package datemath

import (
	"strings"
	"time"
)

// calendarLayouts are tried in order by ParseInstant. Date-only layouts come
// first since schedule dates are mostly plain calendar days.
var calendarLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateTime,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02.01.2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
	"Mon, 02 Jan 2006",
	"Mon Jan 2 2006",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseInstant parses a calendar date or timestamp string, trying a fixed set
// of common layouts. Strings without an offset are read in loc (UTC if nil).
// It reports false when no layout matches.
func ParseInstant(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range calendarLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDate parses an absolute date string in the parser's timezone.
func (p *Parser) ParseDate(s string) (time.Time, bool) {
	return ParseInstant(s, p.location)
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}
