package model

// Task is a unit of production work.
type Task struct {
	Header
	Description string `json:"description,omitempty"`
	Assignee    string `json:"assignee,omitempty"`
}

// Lookup resolves task fields before the shared header fields.
func (t Task) Lookup(field string) Value {
	switch field {
	case FieldDescription:
		return textValue(t.Description)
	case FieldAssignee:
		return textValue(t.Assignee)
	}
	return t.Header.Lookup(field)
}

// UnmarshalJSON decodes a task leniently and keeps the raw record for
// dynamic lookups. null leaves the task unchanged.
func (t *Task) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	h, obj, err := decodeHeader(data)
	if err != nil {
		return err
	}
	*t = Task{
		Header:      h,
		Description: textOf(obj, FieldDescription),
		Assignee:    textOf(obj, FieldAssignee),
	}
	return nil
}
