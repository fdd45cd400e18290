package dataview

import (
	"time"

	"production-board/internal/model"
	"production-board/pkg/datemath"
)

const StageDue = "due"

// DueBy drops items due after cutoff. Items without a parseable due date
// pass. Date-only due dates are read in cutoff's location.
func DueBy(cutoff time.Time) Stage {
	loc := cutoff.Location()
	return Stage{
		Name: StageDue,
		Keep: func(e model.Entity) bool {
			due, ok := datemath.ParseInstant(e.Meta().DueDate, loc)
			if !ok {
				return true
			}
			return !due.After(cutoff)
		},
	}
}
