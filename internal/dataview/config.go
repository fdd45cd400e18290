package dataview

import "production-board/internal/model"

// Predicate decides whether e matches the filter value want.
type Predicate func(e model.Entity, want string) bool

// Stage is an extra filter step run after the built-in ones. Keep returns
// false to drop an item.
type Stage struct {
	Name string
	Keep func(e model.Entity) bool
}

// FilterConfig declares how one kind of collection is searched and sorted.
type FilterConfig struct {
	// SearchFields are the field names the query is matched against.
	// Without any, the query is ignored.
	SearchFields []string

	// Overrides replace the default case-insensitive equality check of the
	// category, status or priority stage, keyed by field name.
	Overrides map[string]Predicate

	// Stages run after the built-in stages, in order.
	Stages []Stage

	// DefaultSort and DefaultDirection seed DefaultState. Zero values mean
	// alpha / ascending.
	DefaultSort      SortSpec
	DefaultDirection Direction
}

// WithStages returns a copy of cfg with extra stages appended.
func (cfg FilterConfig) WithStages(stages ...Stage) FilterConfig {
	merged := make([]Stage, 0, len(cfg.Stages)+len(stages))
	merged = append(merged, cfg.Stages...)
	merged = append(merged, stages...)
	cfg.Stages = merged
	return cfg
}
