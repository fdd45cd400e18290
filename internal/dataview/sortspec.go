package dataview

// SortKey is a well-known sort criterion, or SortField for a caller-defined
// field name.
type SortKey uint8

const (
	SortAlpha SortKey = iota
	SortStatus
	SortPriority
	SortDueDate
	SortCreated
	SortModified
	SortField
)

var sortKeyNames = map[SortKey]string{
	SortAlpha:    "alpha",
	SortStatus:   "status",
	SortPriority: "priority",
	SortDueDate:  "dueDate",
	SortCreated:  "created",
	SortModified: "modified",
}

var sortKeysByName = map[string]SortKey{
	"alpha":    SortAlpha,
	"status":   SortStatus,
	"priority": SortPriority,
	"dueDate":  SortDueDate,
	"created":  SortCreated,
	"modified": SortModified,
	"updated":  SortModified,
}

// SortSpec selects how a list is ordered. Field is only meaningful when Key
// is SortField. The zero value sorts alphabetically.
type SortSpec struct {
	Key   SortKey
	Field string
}

// ByKey returns the spec for a well-known key.
func ByKey(k SortKey) SortSpec {
	return SortSpec{Key: k}
}

// ByField returns the spec sorting on a caller-defined field.
func ByField(name string) SortSpec {
	return SortSpec{Key: SortField, Field: name}
}

// ParseSort maps a sort name to its spec. Unknown names sort on the field of
// that name; the empty string is alpha.
func ParseSort(s string) SortSpec {
	if s == "" {
		return SortSpec{}
	}
	if k, ok := sortKeysByName[s]; ok {
		return ByKey(k)
	}
	return ByField(s)
}

// String returns the wire name of the spec.
func (s SortSpec) String() string {
	if s.Key == SortField {
		return s.Field
	}
	if name, ok := sortKeyNames[s.Key]; ok {
		return name
	}
	return sortKeyNames[SortAlpha]
}

// MarshalText implements encoding.TextMarshaler.
func (s SortSpec) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SortSpec) UnmarshalText(text []byte) error {
	*s = ParseSort(string(text))
	return nil
}
