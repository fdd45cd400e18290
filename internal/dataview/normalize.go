package dataview

import "production-board/internal/model"

// ExtractItems returns the plain sequence behind src: the list itself, the
// items of a paginated envelope, or an empty slice when src or its items are
// absent. The result is never nil. A bare list is returned as is and must be
// treated as read-only.
func ExtractItems[T any](src model.Source[T]) []T {
	if src == nil {
		return []T{}
	}
	items := src.Entries()
	if items == nil {
		return []T{}
	}
	return items
}
