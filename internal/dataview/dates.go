package dataview

import (
	"maps"
	"slices"
	"strings"
	"time"

	"production-board/internal/model"
	"production-board/pkg/datemath"
)

type calendarKey struct {
	ok bool
	at time.Time
}

func (k calendarKey) compare(o calendarKey) int {
	switch {
	case k.ok == o.ok:
		return k.at.Compare(o.at)
	case !k.ok:
		return -1
	default:
		return 1
	}
}

// DynamicDates returns the distinct non-empty shot dates in chronological
// order. Dates are parsed best-effort; unparseable ones come first. Dates at
// the same instant are ordered by their text.
func DynamicDates(shots []model.Shot) []string {
	seen := make(map[string]calendarKey)
	for _, s := range shots {
		if s.Date == "" {
			continue
		}
		if _, ok := seen[s.Date]; ok {
			continue
		}
		at, ok := datemath.ParseInstant(s.Date, time.UTC)
		seen[s.Date] = calendarKey{ok: ok, at: at}
	}

	dates := slices.Collect(maps.Keys(seen))
	slices.SortFunc(dates, func(a, b string) int {
		if c := seen[a].compare(seen[b]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	if dates == nil {
		return []string{}
	}
	return dates
}
