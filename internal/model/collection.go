package model

import (
	"bytes"
	"encoding/json"
)

// Source is anything that can hand over a plain sequence of entities:
// a bare list, a paginated envelope, or a decoded Collection.
type Source[T any] interface {
	Entries() []T
}

// List is a bare sequence of entities.
type List[T any] []T

// Entries returns the list itself.
func (l List[T]) Entries() []T {
	return l
}

// Page is a paginated envelope. Only Items matters to the view engine.
type Page[T any] struct {
	Items    []T  `json:"items"`
	Total    int  `json:"total,omitempty"`
	Number   int  `json:"page,omitempty"`
	PageSize int  `json:"pageSize,omitempty"`
	HasMore  bool `json:"hasMore,omitempty"`
}

// Entries returns the page items. A nil page has none.
func (p *Page[T]) Entries() []T {
	if p == nil {
		return nil
	}
	return p.Items
}

// Collection decodes either a JSON array of entities, a paginated envelope
// object, or null.
type Collection[T any] struct {
	Items    []T
	Envelope *Page[T] // nil when the input was a bare array or null
}

// Entries returns the decoded entities.
func (c Collection[T]) Entries() []T {
	return c.Items
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = Collection[T]{}
		return nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*c = Collection[T]{Items: items}
		return nil
	}

	var page Page[T]
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return err
	}
	*c = Collection[T]{Items: page.Items, Envelope: &page}
	return nil
}

// MarshalJSON writes the envelope when one was decoded, otherwise the bare array.
func (c Collection[T]) MarshalJSON() ([]byte, error) {
	if c.Envelope != nil {
		return json.Marshal(c.Envelope)
	}
	if c.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.Items)
}
