package dataview_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"production-board/internal/dataview"
	"production-board/internal/model"
)

func TestGroupByDate(t *testing.T) {
	got := dataview.GroupByDate(exampleShots())

	want := map[string][]string{
		"2024-03-01": {"s2", "s1"},
		"2024-03-02": {"s3"},
	}
	gotIDs := make(map[string][]string, len(got))
	for date, bucket := range got {
		gotIDs[date] = ids(bucket)
	}
	if diff := cmp.Diff(want, gotIDs); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByDateSkipsUndated(t *testing.T) {
	shots := []model.Shot{
		shot("a", "", "08:00", model.StatusTodo),
		shot("b", "2024-05-01", "", model.StatusTodo),
	}

	got := dataview.GroupByDate(shots)
	if len(got) != 1 {
		t.Fatalf("expected 1 group, got %d", len(got))
	}
	if _, ok := got[""]; ok {
		t.Errorf("undated shot must not get a synthetic group")
	}
}

func TestGroupByDateCompletenessAndOrder(t *testing.T) {
	shots := []model.Shot{
		shot("a", "2024-05-02", "10:00", model.StatusTodo),
		shot("b", "2024-05-01", "", model.StatusTodo),
		shot("c", "2024-05-02", "", model.StatusDone),
		shot("d", "", "07:00", model.StatusDone),
		shot("e", "2024-05-01", "09:30", model.StatusReview),
		shot("f", "2024-05-02", "10:00", model.StatusPending),
		shot("g", "2024-05-01", "09:30", model.StatusTodo),
	}

	got := dataview.GroupByDate(shots)

	var all []string
	for date, bucket := range got {
		for i, s := range bucket {
			if s.Date != date {
				t.Errorf("shot %s filed under %s, has date %s", s.ID, date, s.Date)
			}
			if i > 0 && bucket[i-1].StartTime > s.StartTime {
				t.Errorf("bucket %s not ordered at %d: %q > %q", date, i, bucket[i-1].StartTime, s.StartTime)
			}
			all = append(all, s.ID)
		}
	}
	sort.Strings(all)
	if diff := cmp.Diff([]string{"a", "b", "c", "e", "f", "g"}, all); diff != "" {
		t.Errorf("dated shots mismatch (-want +got):\n%s", diff)
	}

	// Equal start times keep input order.
	if diff := cmp.Diff([]string{"c", "a", "f"}, ids(got["2024-05-02"])); diff != "" {
		t.Errorf("tie order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b", "e", "g"}, ids(got["2024-05-01"])); diff != "" {
		t.Errorf("tie order mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByDateDoesNotTouchInput(t *testing.T) {
	shots := exampleShots()
	before := ids(shots)

	groups := dataview.GroupByDate(shots)
	groups["2024-03-01"][0].Title = "changed"

	if diff := cmp.Diff(before, ids(shots)); diff != "" {
		t.Errorf("input reordered (-before +after):\n%s", diff)
	}
	for _, s := range shots {
		if s.Title != "" {
			t.Errorf("mutating a group leaked into the input: %+v", s)
		}
	}

	again := dataview.GroupByDate(shots)
	if again["2024-03-01"][0].Title != "" {
		t.Errorf("mutating one result leaked into the next")
	}
}

func TestGroupByDateEmpty(t *testing.T) {
	got := dataview.GroupByDate(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil map, got %v", got)
	}
}
