package view

import (
	"context"

	"production-board/internal/dataview"
	"production-board/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Schedule groups shots by date and derives the date axis and progress.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)

	// Filtered and sorted lists, one per collection kind.
	ListShots(ctx context.Context, input ListInput[model.Shot]) (ListOutput[model.Shot], error)
	ListTasks(ctx context.Context, input ListInput[model.Task]) (ListOutput[model.Task], error)
	ListNotes(ctx context.Context, input ListInput[model.Note]) (ListOutput[model.Note], error)

	// DefaultState returns the unfiltered state for a collection kind.
	DefaultState(ctx context.Context, kind Kind) (dataview.FilterState, error)
}
