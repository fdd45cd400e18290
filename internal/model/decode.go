package model

import (
	"bytes"

	"github.com/tidwall/gjson"
)

// decodeHeader reads the shared attributes of one record. Attributes of the
// wrong type are treated as absent, except numbers, which keep their JSON
// text ("id": 7 reads as "7"). The record itself is kept as Raw.
func decodeHeader(data []byte) (Header, gjson.Result, error) {
	obj := gjson.ParseBytes(data)
	if !obj.IsObject() {
		return Header{}, obj, ErrNotObject
	}

	return Header{
		ID:        textOf(obj, FieldID),
		Title:     textOf(obj, FieldTitle),
		Category:  textOf(obj, FieldCategory),
		Status:    Status(textOf(obj, FieldStatus)),
		Priority:  Priority(textOf(obj, FieldPriority)),
		DueDate:   textOf(obj, FieldDueDate),
		CreatedAt: textOf(obj, FieldCreatedAt),
		UpdatedAt: textOf(obj, FieldUpdatedAt),
		Raw:       bytes.Clone(data),
	}, obj, nil
}

// textOf returns obj[field] as text: strings as is, numbers as written,
// anything else as "".
func textOf(obj gjson.Result, field string) string {
	res := obj.Get(field)
	switch res.Type {
	case gjson.String:
		return res.Str
	case gjson.Number:
		return res.Raw
	default:
		return ""
	}
}

// isNull reports whether data is the JSON literal null.
func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
