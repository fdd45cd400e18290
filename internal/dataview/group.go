package dataview

import (
	"slices"
	"strings"

	"production-board/internal/model"
)

// GroupByDate buckets shots by their date. Shots without a date are left
// out. Each bucket keeps input order for equal start times and is otherwise
// ascending by start time, with a missing start time sorting first.
func GroupByDate(shots []model.Shot) map[string][]model.Shot {
	groups := make(map[string][]model.Shot)
	for _, s := range shots {
		if s.Date == "" {
			continue
		}
		groups[s.Date] = append(groups[s.Date], s)
	}

	for _, bucket := range groups {
		slices.SortStableFunc(bucket, func(a, b model.Shot) int {
			return strings.Compare(a.StartTime, b.StartTime)
		})
	}
	return groups
}
