package view

import (
	"slices"

	"production-board/internal/dataview"
	"production-board/internal/model"
)

// Kind names a collection type.
type Kind string

const (
	KindShots Kind = "shots"
	KindTasks Kind = "tasks"
	KindNotes Kind = "notes"
)

// Kinds lists every collection kind.
var Kinds = []Kind{KindShots, KindTasks, KindNotes}

// ParseKind validates a collection kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !slices.Contains(Kinds, k) {
		return "", ErrUnknownKind
	}
	return k, nil
}

// --- UseCase Inputs ---

// ScheduleInput carries the shots to lay out. Key identifies the input for
// memoization; an empty Key disables it.
type ScheduleInput struct {
	Key   string
	Shots model.Source[model.Shot]
}

// ListInput carries a collection plus the caller's filter changes.
// Due is an optional relative or absolute day ("today", "in 3 days",
// "2024-03-10"); items due after that day are dropped.
type ListInput[T model.Entity] struct {
	Key   string
	Items model.Source[T]
	State dataview.StatePatch
	Due   string
}

// --- UseCase Outputs ---

type ScheduleOutput struct {
	Groups   map[string][]model.Shot `json:"groups"`
	Dates    []string                `json:"dates"`
	Progress dataview.Summary        `json:"progress"`
}

// Clone returns a deep copy, down to each shot's raw record.
func (o ScheduleOutput) Clone() ScheduleOutput {
	groups := make(map[string][]model.Shot, len(o.Groups))
	for date, bucket := range o.Groups {
		groups[date] = model.CloneAll(bucket)
	}
	return ScheduleOutput{
		Groups:   groups,
		Dates:    slices.Clone(o.Dates),
		Progress: o.Progress,
	}
}

type ListOutput[T model.Entity] struct {
	Items    []T                  `json:"items"`
	Total    int                  `json:"total"` // items before filtering
	Count    int                  `json:"count"` // items after filtering
	State    dataview.FilterState `json:"state"`
	Progress dataview.Summary     `json:"progress"` // over the unfiltered collection
}

// Clone returns a copy with its own items and raw records.
func (o ListOutput[T]) Clone() ListOutput[T] {
	o.Items = model.CloneAll(o.Items)
	return o
}
