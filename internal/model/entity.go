package model

import (
	"encoding/json"
	"strconv"

	"github.com/tidwall/gjson"
)

// Status is the workflow state of a shot, task or note.
type Status string

const (
	StatusPending  Status = "pending"
	StatusTodo     Status = "todo"
	StatusProgress Status = "progress"
	StatusReview   Status = "review"
	StatusDone     Status = "done"
)

// Priority is the urgency of an entity.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Well-known field names, as they appear on the wire.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldCategory    = "category"
	FieldStatus      = "status"
	FieldPriority    = "priority"
	FieldDueDate     = "dueDate"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"
	FieldDate        = "date"
	FieldStartTime   = "startTime"
	FieldDescription = "description"
	FieldAssignee    = "assignee"
	FieldContent     = "content"
)

// Entity is a record the view engine can read: the shared header plus
// by-name field lookup for search and caller-defined sort keys.
type Entity interface {
	Meta() Header
	Lookup(field string) Value
}

// Header holds the attributes shared by shots, tasks and notes.
// Empty strings mean the attribute is absent.
type Header struct {
	ID        string   `json:"id"`
	Title     string   `json:"title,omitempty"`
	Category  string   `json:"category,omitempty"`
	Status    Status   `json:"status,omitempty"`
	Priority  Priority `json:"priority,omitempty"`
	DueDate   string   `json:"dueDate,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
	UpdatedAt string   `json:"updatedAt,omitempty"`

	// Raw is the JSON object the record was decoded from. Fields the typed
	// struct does not know about are looked up here.
	Raw json.RawMessage `json:"-"`
}

// Meta returns the shared header.
func (h Header) Meta() Header {
	return h
}

// Lookup returns the value of a header field, falling back to the raw record
// for any other name. Nested attributes use dot paths ("meta.camera").
func (h Header) Lookup(field string) Value {
	switch field {
	case FieldID:
		return textValue(h.ID)
	case FieldTitle:
		return textValue(h.Title)
	case FieldCategory:
		return textValue(h.Category)
	case FieldStatus:
		return textValue(string(h.Status))
	case FieldPriority:
		return textValue(string(h.Priority))
	case FieldDueDate:
		return textValue(h.DueDate)
	case FieldCreatedAt:
		return textValue(h.CreatedAt)
	case FieldUpdatedAt:
		return textValue(h.UpdatedAt)
	}
	return lookupRaw(h.Raw, field)
}

// Kind is the dynamic type of a looked-up Value.
type Kind uint8

const (
	KindNone Kind = iota
	KindString
	KindNumber
	KindOther
)

// Value is the result of a by-name field lookup.
type Value struct {
	Kind Kind
	Str  string  // KindString text, or the JSON text of a KindOther value
	Num  float64 // KindNumber
}

// StringValue wraps s.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NumberValue wraps n.
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

// String renders the value as text: numbers in shortest decimal form,
// other values as their JSON text, absent values as "".
func (v Value) String() string {
	switch v.Kind {
	case KindString, KindOther:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return ""
	}
}

func textValue(s string) Value {
	if s == "" {
		return Value{}
	}
	return StringValue(s)
}

func lookupRaw(raw json.RawMessage, field string) Value {
	if len(raw) == 0 || field == "" {
		return Value{}
	}

	res := gjson.GetBytes(raw, field)
	switch res.Type {
	case gjson.String:
		return StringValue(res.Str)
	case gjson.Number:
		return NumberValue(res.Num)
	case gjson.True, gjson.False, gjson.JSON:
		return Value{Kind: KindOther, Str: res.Raw}
	default:
		return Value{}
	}
}
