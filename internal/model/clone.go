package model

import "bytes"

// Clone returns a copy of s that does not share its raw record.
func (s Shot) Clone() Shot {
	s.Raw = bytes.Clone(s.Raw)
	return s
}

// Clone returns a copy of t that does not share its raw record.
func (t Task) Clone() Task {
	t.Raw = bytes.Clone(t.Raw)
	return t
}

// Clone returns a copy of n that does not share its raw record.
func (n Note) Clone() Note {
	n.Raw = bytes.Clone(n.Raw)
	return n
}

// CloneAll copies items. Entities with a Clone method get their own raw
// record; anything else is copied by value.
func CloneAll[T any](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, it := range items {
		if c, ok := any(it).(interface{ Clone() T }); ok {
			out[i] = c.Clone()
			continue
		}
		out[i] = it
	}
	return out
}
