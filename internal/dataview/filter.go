package dataview

import (
	"strings"

	"production-board/internal/model"
)

const stageSearch = "search"

// ApplyFilters keeps the items that pass every active stage, in input order.
// Stages run in a fixed order (search, category, status, priority, then the
// configured extra stages) and stop at the first that rejects an item.
func ApplyFilters[T model.Entity](items []T, state FilterState, cfg FilterConfig) []T {
	stages := activeStages(state, cfg)

	out := make([]T, 0, len(items))
	for _, it := range items {
		if keepAll(it, stages) {
			out = append(out, it)
		}
	}
	return out
}

// ActiveStages lists the names of the stages state and cfg switch on.
func ActiveStages(state FilterState, cfg FilterConfig) []string {
	stages := activeStages(state, cfg)
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.Name
	}
	return names
}

func keepAll(e model.Entity, stages []Stage) bool {
	for _, s := range stages {
		if !s.Keep(e) {
			return false
		}
	}
	return true
}

func activeStages(state FilterState, cfg FilterConfig) []Stage {
	var stages []Stage

	if state.Query != "" && len(cfg.SearchFields) > 0 {
		stages = append(stages, Stage{Name: stageSearch, Keep: searchStage(state.Query, cfg.SearchFields)})
	}

	for _, f := range []struct{ field, want string }{
		{model.FieldCategory, state.Category},
		{model.FieldStatus, state.Status},
		{model.FieldPriority, state.Priority},
	} {
		if isUnfiltered(f.want) {
			continue
		}
		pred := cfg.Overrides[f.field]
		if pred == nil {
			pred = fieldEquals(f.field)
		}
		want := f.want
		stages = append(stages, Stage{Name: f.field, Keep: func(e model.Entity) bool {
			return pred(e, want)
		}})
	}

	for _, s := range cfg.Stages {
		if s.Keep != nil {
			stages = append(stages, s)
		}
	}
	return stages
}

// searchStage matches strings case-insensitively and numbers by their
// decimal text. Other kinds never match.
func searchStage(query string, fields []string) func(model.Entity) bool {
	lowered := strings.ToLower(query)
	return func(e model.Entity) bool {
		for _, f := range fields {
			v := e.Lookup(f)
			switch v.Kind {
			case model.KindString:
				if strings.Contains(strings.ToLower(v.Str), lowered) {
					return true
				}
			case model.KindNumber:
				if strings.Contains(v.String(), query) {
					return true
				}
			}
		}
		return false
	}
}

// fieldEquals compares case-insensitively. Entities without the field pass.
func fieldEquals(field string) Predicate {
	return func(e model.Entity, want string) bool {
		v := e.Lookup(field)
		if v.Kind == model.KindNone {
			return true
		}
		return strings.EqualFold(v.String(), want)
	}
}

// Select filters items and sorts the survivors per state.
func Select[T model.Entity](items []T, state FilterState, cfg FilterConfig) []T {
	return SortItems(ApplyFilters(items, state, cfg), state.SortBy, state.SortDirection)
}
