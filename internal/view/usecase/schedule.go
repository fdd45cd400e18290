package usecase

import (
	"context"

	"production-board/internal/dataview"
	"production-board/internal/view"
)

// Schedule groups shots by date, derives the date axis and summarizes progress.
func (uc *implUseCase) Schedule(ctx context.Context, input view.ScheduleInput) (view.ScheduleOutput, error) {
	key := ""
	if input.Key != "" {
		key = "schedule|" + input.Key
	}
	if out, ok := cached[view.ScheduleOutput](uc, key); ok {
		uc.l.Debugf(ctx, "view.usecase.Schedule: cache hit %s", input.Key)
		return out.Clone(), nil
	}

	shots := dataview.ExtractItems(input.Shots)
	out := view.ScheduleOutput{
		Groups:   dataview.GroupByDate(shots),
		Dates:    dataview.DynamicDates(shots),
		Progress: dataview.Progress(shots),
	}

	uc.l.Debugf(ctx, "view.usecase.Schedule: shots=%d dates=%d", len(shots), len(out.Dates))
	uc.store(key, out)
	return out.Clone(), nil
}
