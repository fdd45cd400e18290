package dataview

import (
	"math"

	"production-board/internal/model"
)

// Summary is the completion state of a collection.
type Summary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	Percentage int `json:"percentage"` // 0-100, rounded
}

// Progress counts items and those whose status is done.
func Progress[T model.Entity](items []T) Summary {
	total := len(items)
	if total == 0 {
		return Summary{}
	}

	completed := 0
	for _, it := range items {
		if it.Meta().Status == model.StatusDone {
			completed++
		}
	}

	return Summary{
		Total:      total,
		Completed:  completed,
		Pending:    total - completed,
		Percentage: int(math.Round(float64(completed) / float64(total) * 100)),
	}
}
