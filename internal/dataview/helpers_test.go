package dataview_test

import "production-board/internal/model"

func ids[T model.Entity](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Meta().ID
	}
	return out
}

func shot(id, date, start string, status model.Status) model.Shot {
	return model.Shot{
		Header:    model.Header{ID: id, Status: status},
		Date:      date,
		StartTime: start,
	}
}

// exampleShots is the three-shot schedule used throughout the package tests.
func exampleShots() []model.Shot {
	return []model.Shot{
		shot("s1", "2024-03-01", "14:00", model.StatusTodo),
		shot("s2", "2024-03-01", "09:00", model.StatusDone),
		shot("s3", "2024-03-02", "", model.StatusDone),
	}
}

func task(id, title string, mutate ...func(*model.Task)) model.Task {
	t := model.Task{Header: model.Header{ID: id, Title: title}}
	for _, m := range mutate {
		m(&t)
	}
	return t
}
