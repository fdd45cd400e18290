package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"production-board/internal/model"
)

func TestCollectionUnmarshal(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantIDs      []string
		wantEnvelope bool
	}{
		{name: "Bare array", input: `[{"id":"s1"},{"id":"s2"}]`, wantIDs: []string{"s1", "s2"}},
		{name: "Envelope", input: `{"items":[{"id":"s3"}],"total":10,"page":2}`, wantIDs: []string{"s3"}, wantEnvelope: true},
		{name: "Envelope without items", input: `{"total":0}`, wantEnvelope: true},
		{name: "Null", input: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c model.Collection[model.Shot]
			if err := json.Unmarshal([]byte(tt.input), &c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var ids []string
			for _, s := range c.Entries() {
				ids = append(ids, s.ID)
			}
			if diff := cmp.Diff(tt.wantIDs, ids, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ids mismatch (-want +got):\n%s", diff)
			}
			if (c.Envelope != nil) != tt.wantEnvelope {
				t.Errorf("envelope = %v, want %v", c.Envelope != nil, tt.wantEnvelope)
			}
		})
	}
}

func TestCollectionInStruct(t *testing.T) {
	var body struct {
		Shots model.Collection[model.Shot] `json:"shots"`
	}
	if err := json.Unmarshal([]byte(`{"shots":{"items":[{"id":"a","date":"2024-03-01"}],"hasMore":true}}`), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body.Shots.Items) != 1 || body.Shots.Items[0].Date != "2024-03-01" {
		t.Errorf("unexpected items: %+v", body.Shots.Items)
	}
	if !body.Shots.Envelope.HasMore {
		t.Errorf("expected envelope metadata to be kept")
	}
}

func TestPageEntriesNil(t *testing.T) {
	var p *model.Page[model.Task]
	if got := p.Entries(); got != nil {
		t.Errorf("expected nil entries from nil page, got %v", got)
	}
}

func TestLookup(t *testing.T) {
	var shot model.Shot
	raw := `{"id":"s1","title":"Opening","date":"2024-03-01","startTime":"09:00",
		"take":3,"camera":{"lens":"35mm"},"approved":true,"notes":null}`
	if err := json.Unmarshal([]byte(raw), &shot); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		field string
		want  model.Value
	}{
		{field: "id", want: model.StringValue("s1")},
		{field: "title", want: model.StringValue("Opening")},
		{field: "date", want: model.StringValue("2024-03-01")},
		{field: "startTime", want: model.StringValue("09:00")},
		{field: "category", want: model.Value{}},
		{field: "take", want: model.NumberValue(3)},
		{field: "camera.lens", want: model.StringValue("35mm")},
		{field: "approved", want: model.Value{Kind: model.KindOther, Str: "true"}},
		{field: "notes", want: model.Value{}},
		{field: "missing", want: model.Value{}},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := shot.Lookup(tt.field); got != tt.want {
				t.Errorf("Lookup(%q) = %+v, want %+v", tt.field, got, tt.want)
			}
		})
	}
}

func TestLookupTypeSpecific(t *testing.T) {
	task := model.Task{Header: model.Header{ID: "t1"}, Assignee: "mai"}
	if got := task.Lookup(model.FieldAssignee); got != model.StringValue("mai") {
		t.Errorf("unexpected assignee lookup: %+v", got)
	}

	note := model.Note{Header: model.Header{ID: "n1"}, Content: "call actors"}
	if got := note.Lookup(model.FieldContent); got != model.StringValue("call actors") {
		t.Errorf("unexpected content lookup: %+v", got)
	}
	// No raw record: unknown names are absent.
	if got := note.Lookup("rating"); got.Kind != model.KindNone {
		t.Errorf("expected absent value, got %+v", got)
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name string
		v    model.Value
		want string
	}{
		{name: "None", v: model.Value{}, want: ""},
		{name: "String", v: model.StringValue("Abc"), want: "Abc"},
		{name: "Integer", v: model.NumberValue(42), want: "42"},
		{name: "Fraction", v: model.NumberValue(2.5), want: "2.5"},
		{name: "Other", v: model.Value{Kind: model.KindOther, Str: "false"}, want: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTaskDecodeLenient(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.Task
	}{
		{
			name: "Well typed",
			raw:  `{"id":"t1","title":"Rig","status":"done","priority":"high","dueDate":"2024-03-05","assignee":"mai"}`,
			want: model.Task{
				Header:   model.Header{ID: "t1", Title: "Rig", Status: model.StatusDone, Priority: model.PriorityHigh, DueDate: "2024-03-05"},
				Assignee: "mai",
			},
		},
		{
			name: "Numbers keep their text",
			raw:  `{"id":7,"title":5.5,"category":"Lighting"}`,
			want: model.Task{Header: model.Header{ID: "7", Title: "5.5", Category: "Lighting"}},
		},
		{
			name: "Other kinds are absent",
			raw:  `{"id":"t2","title":["a"],"status":true,"priority":{"level":3},"dueDate":null,"description":false}`,
			want: model.Task{Header: model.Header{ID: "t2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.Task
			if err := json.Unmarshal([]byte(tt.raw), &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(model.Header{}, "Raw")); diff != "" {
				t.Errorf("task mismatch (-want +got):\n%s", diff)
			}
			if string(got.Raw) != tt.raw {
				t.Errorf("raw record not kept: %s", got.Raw)
			}
		})
	}
}

func TestCollectionWithMistypedFields(t *testing.T) {
	var c model.Collection[model.Shot]
	raw := `[{"id":1,"date":"2024-03-01","startTime":900},{"id":"s2","date":20240302},null]`
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make([][3]string, len(c.Items))
	for i, s := range c.Items {
		got[i] = [3]string{s.ID, s.Date, s.StartTime}
	}
	want := [][3]string{{"1", "2024-03-01", "900"}, {"s2", "20240302", ""}, {"", "", ""}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("shots mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsNonObject(t *testing.T) {
	var notes []model.Note
	err := json.Unmarshal([]byte(`["just text"]`), &notes)
	if !errors.Is(err, model.ErrNotObject) {
		t.Fatalf("expected ErrNotObject, got %v", err)
	}
}

func TestCloneAll(t *testing.T) {
	var shots []model.Shot
	if err := json.Unmarshal([]byte(`[{"id":"s1","take":1}]`), &shots); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cloned := model.CloneAll(shots)
	cloned[0].Raw[len(cloned[0].Raw)-2] = '9'
	cloned[0].ID = "changed"

	if got := shots[0].Lookup("take"); got != model.NumberValue(1) {
		t.Errorf("original raw record changed: %+v", got)
	}
	if shots[0].ID != "s1" {
		t.Errorf("original id changed: %q", shots[0].ID)
	}
	if model.CloneAll[model.Shot](nil) != nil {
		t.Error("expected nil for nil input")
	}
	if got := model.CloneAll([]int{1, 2}); !cmp.Equal([]int{1, 2}, got) {
		t.Errorf("plain values not copied: %v", got)
	}
}
