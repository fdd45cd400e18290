package usecase

import (
	"context"

	"production-board/internal/dataview"
	"production-board/internal/view"
)

// DefaultState returns the unfiltered state for kind.
func (uc *implUseCase) DefaultState(ctx context.Context, kind view.Kind) (dataview.FilterState, error) {
	cfg, ok := uc.collections[kind]
	if !ok {
		uc.l.Warnf(ctx, "view.usecase.DefaultState: unknown kind %q", kind)
		return dataview.FilterState{}, view.ErrUnknownKind
	}
	return dataview.DefaultState(cfg), nil
}
