package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"production-board/internal/dataview"
	"production-board/internal/model"
	"production-board/internal/view"
)

func (uc *implUseCase) ListShots(ctx context.Context, input view.ListInput[model.Shot]) (view.ListOutput[model.Shot], error) {
	return list(ctx, uc, view.KindShots, input)
}

func (uc *implUseCase) ListTasks(ctx context.Context, input view.ListInput[model.Task]) (view.ListOutput[model.Task], error) {
	return list(ctx, uc, view.KindTasks, input)
}

func (uc *implUseCase) ListNotes(ctx context.Context, input view.ListInput[model.Note]) (view.ListOutput[model.Note], error) {
	return list(ctx, uc, view.KindNotes, input)
}

// list resolves the state for kind, then filters and sorts the collection.
func list[T model.Entity](ctx context.Context, uc *implUseCase, kind view.Kind, input view.ListInput[T]) (view.ListOutput[T], error) {
	patch, err := normalizePatch(input.State)
	if err != nil {
		uc.l.Warnf(ctx, "view.usecase.list.normalizePatch: %v", err)
		return view.ListOutput[T]{}, err
	}

	cfg := uc.collections[kind]
	var cutoff time.Time
	if due := strings.TrimSpace(input.Due); due != "" {
		cutoff, err = uc.dueCutoff(due)
		if err != nil {
			uc.l.Warnf(ctx, "view.usecase.list.dueCutoff: %v", err)
			return view.ListOutput[T]{}, err
		}
		cfg = cfg.WithStages(dataview.DueBy(cutoff))
	}

	key, err := listKey(kind, input.Key, patch, cutoff)
	if err != nil {
		return view.ListOutput[T]{}, err
	}
	if out, ok := cached[view.ListOutput[T]](uc, key); ok {
		uc.l.Debugf(ctx, "view.usecase.list: cache hit %s/%s", kind, input.Key)
		return out.Clone(), nil
	}

	items := dataview.ExtractItems(input.Items)
	state := dataview.DefaultState(cfg).Apply(patch)
	selected := dataview.Select(items, state, cfg)

	uc.l.Debugf(ctx, "view.usecase.list: kind=%s stages=%v in=%d out=%d",
		kind, dataview.ActiveStages(state, cfg), len(items), len(selected))

	out := view.ListOutput[T]{
		Items:    selected,
		Total:    len(items),
		Count:    len(selected),
		State:    state,
		Progress: dataview.Progress(items),
	}
	uc.store(key, out)
	return out.Clone(), nil
}

// normalizePatch rewrites a supplied sort direction to its canonical form.
func normalizePatch(p dataview.StatePatch) (dataview.StatePatch, error) {
	if p.SortDirection == nil {
		return p, nil
	}
	dir, ok := dataview.ParseDirection(string(*p.SortDirection))
	if !ok {
		return p, fmt.Errorf("%w: %q", view.ErrInvalidDirection, *p.SortDirection)
	}
	p.SortDirection = &dir
	return p, nil
}

// dueCutoff resolves a due phrase to the last second of that day.
func (uc *implUseCase) dueCutoff(due string) (time.Time, error) {
	day, err := uc.dateMath.Parse(due, uc.now())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", view.ErrInvalidDue, err)
	}
	return uc.dateMath.EndOfDay(day), nil
}

// listKey identifies a list request. The resolved cutoff is part of the key
// so relative windows like "today" expire when the day changes.
func listKey(kind view.Kind, inputKey string, patch dataview.StatePatch, cutoff time.Time) (string, error) {
	if inputKey == "" {
		return "", nil
	}
	b, err := json.Marshal(patch)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("list|%s|%s|%s", kind, inputKey, b)
	if !cutoff.IsZero() {
		key += "|" + cutoff.Format(time.RFC3339)
	}
	return key, nil
}
