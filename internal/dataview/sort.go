package dataview

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"production-board/internal/model"
	"production-board/pkg/datemath"
)

var statusRank = map[model.Status]int{
	model.StatusDone:     4,
	model.StatusReview:   3,
	model.StatusProgress: 2,
	model.StatusTodo:     1,
	model.StatusPending:  0,
}

var priorityRank = map[model.Priority]int{
	model.PriorityCritical: 4,
	model.PriorityHigh:     3,
	model.PriorityMedium:   2,
	model.PriorityLow:      1,
}

var (
	// Undated items sort last ascending.
	farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	// Items without a created/updated stamp sort first ascending.
	epoch = time.Unix(0, 0).UTC()
)

// sortValue is the extracted key of one item. Only the part relevant to the
// sort key is set; the rest stays zero and compares equal.
type sortValue struct {
	at   time.Time
	rank int
	text string
}

func (v sortValue) compare(o sortValue) int {
	if c := v.at.Compare(o.at); c != 0 {
		return c
	}
	if c := cmp.Compare(v.rank, o.rank); c != 0 {
		return c
	}
	return strings.Compare(v.text, o.text)
}

type extractor func(e model.Entity, field string) sortValue

var extractors = map[SortKey]extractor{
	SortAlpha: func(e model.Entity, _ string) sortValue {
		return sortValue{text: strings.ToLower(e.Meta().Title)}
	},
	SortStatus: func(e model.Entity, _ string) sortValue {
		return sortValue{rank: statusRank[e.Meta().Status]}
	},
	SortPriority: func(e model.Entity, _ string) sortValue {
		return sortValue{rank: priorityRank[e.Meta().Priority]}
	},
	SortDueDate: func(e model.Entity, _ string) sortValue {
		return sortValue{at: instantOr(e.Meta().DueDate, farFuture)}
	},
	SortCreated: func(e model.Entity, _ string) sortValue {
		return sortValue{at: instantOr(e.Meta().CreatedAt, epoch)}
	},
	SortModified: func(e model.Entity, _ string) sortValue {
		return sortValue{at: instantOr(e.Meta().UpdatedAt, epoch)}
	},
	SortField: func(e model.Entity, field string) sortValue {
		return sortValue{text: strings.ToLower(e.Lookup(field).String())}
	},
}

func extractorFor(spec SortSpec) extractor {
	if ex, ok := extractors[spec.Key]; ok {
		return ex
	}
	return extractors[SortField]
}

func instantOr(s string, fallback time.Time) time.Time {
	if t, ok := datemath.ParseInstant(s, time.UTC); ok {
		return t
	}
	return fallback
}

func directionSign(dir Direction) int {
	if dir == Descending {
		return -1
	}
	return 1
}

// Compare orders a and b under spec and dir: negative when a comes first,
// zero when they are equivalent.
func Compare(a, b model.Entity, spec SortSpec, dir Direction) int {
	ex := extractorFor(spec)
	return directionSign(dir) * ex(a, spec.Field).compare(ex(b, spec.Field))
}

// SortItems returns a sorted copy of items. The sort is stable in both
// directions: equivalent items keep their input order.
func SortItems[T model.Entity](items []T, spec SortSpec, dir Direction) []T {
	type keyed struct {
		item T
		key  sortValue
	}

	ex := extractorFor(spec)
	decorated := make([]keyed, len(items))
	for i, it := range items {
		decorated[i] = keyed{item: it, key: ex(it, spec.Field)}
	}

	sign := directionSign(dir)
	slices.SortStableFunc(decorated, func(a, b keyed) int {
		return sign * a.key.compare(b.key)
	})

	out := make([]T, len(decorated))
	for i, d := range decorated {
		out[i] = d.item
	}
	return out
}
