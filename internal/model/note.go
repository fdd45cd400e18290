package model

// Note is a free-form production note.
type Note struct {
	Header
	Content string `json:"content,omitempty"`
}

// Lookup resolves note fields before the shared header fields.
func (n Note) Lookup(field string) Value {
	if field == FieldContent {
		return textValue(n.Content)
	}
	return n.Header.Lookup(field)
}

// UnmarshalJSON decodes a note leniently and keeps the raw record for
// dynamic lookups. null leaves the note unchanged.
func (n *Note) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	h, obj, err := decodeHeader(data)
	if err != nil {
		return err
	}
	*n = Note{
		Header:  h,
		Content: textOf(obj, FieldContent),
	}
	return nil
}
