package dataview

import "strings"

// All is the sentinel meaning "no filter" for category, status and priority.
const All = "All"

// Direction orders a sorted list.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// ParseDirection accepts "ascending"/"asc" and "descending"/"desc" in any
// case. It reports false for anything else.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc":
		return Ascending, true
	case "descending", "desc":
		return Descending, true
	}
	return Ascending, false
}

// FilterState is the user's current search, filter and sort selection.
type FilterState struct {
	Query         string    `json:"query"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	SortBy        SortSpec  `json:"sortBy"`
	SortDirection Direction `json:"sortDirection"`
}

// DefaultState returns the unfiltered state, sorted per cfg.
func DefaultState(cfg FilterConfig) FilterState {
	dir := cfg.DefaultDirection
	if dir == "" {
		dir = Ascending
	}
	return FilterState{
		Category:      All,
		Status:        All,
		Priority:      All,
		SortBy:        cfg.DefaultSort,
		SortDirection: dir,
	}
}

// StatePatch is a partial FilterState update. Nil fields are left unchanged.
type StatePatch struct {
	Query         *string    `json:"query,omitempty"`
	Category      *string    `json:"category,omitempty"`
	Status        *string    `json:"status,omitempty"`
	Priority      *string    `json:"priority,omitempty"`
	SortBy        *SortSpec  `json:"sortBy,omitempty"`
	SortDirection *Direction `json:"sortDirection,omitempty"`
}

// Apply returns s with every field set in p replaced.
func (s FilterState) Apply(p StatePatch) FilterState {
	if p.Query != nil {
		s.Query = *p.Query
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Priority != nil {
		s.Priority = *p.Priority
	}
	if p.SortBy != nil {
		s.SortBy = *p.SortBy
	}
	if p.SortDirection != nil {
		s.SortDirection = *p.SortDirection
	}
	return s
}

func (s FilterState) WithQuery(q string) FilterState {
	return s.Apply(StatePatch{Query: &q})
}

func (s FilterState) WithCategory(c string) FilterState {
	return s.Apply(StatePatch{Category: &c})
}

func (s FilterState) WithStatus(st string) FilterState {
	return s.Apply(StatePatch{Status: &st})
}

func (s FilterState) WithPriority(p string) FilterState {
	return s.Apply(StatePatch{Priority: &p})
}

func (s FilterState) WithSort(spec SortSpec, dir Direction) FilterState {
	return s.Apply(StatePatch{SortBy: &spec, SortDirection: &dir})
}

// isUnfiltered reports whether v is a "no filter" sentinel.
func isUnfiltered(v string) bool {
	return v == "" || strings.EqualFold(v, All)
}
