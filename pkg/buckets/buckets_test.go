package buckets

import (
	"testing"

	"tableflip.dev/notify/pkg/dates"
	"tableflip.dev/notify/pkg/task"
)

var testRanges = dates.Ranges{
	Today:    "2024-06-10",
	Tomorrow: "2024-06-11",
	WeekEnd:  "2024-06-17",
}

func ids(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCategorizeExample(t *testing.T) {
	tasks := []task.Task{
		{ID: "a", Due: "2024-06-09"},
		{ID: "b", Due: "2024-06-10"},
		{ID: "c", Due: "2024-06-10", Completed: true},
	}
	b := Categorize(tasks, testRanges)

	if !equal(ids(b.Overdue), []string{"a"}) {
		t.Errorf("overdue = %v, want [a]", ids(b.Overdue))
	}
	if !equal(ids(b.DueToday), []string{"b"}) {
		t.Errorf("dueToday = %v, want [b]", ids(b.DueToday))
	}
	if !equal(ids(b.Completed), []string{"c"}) {
		t.Errorf("completed = %v, want [c]", ids(b.Completed))
	}
}

func TestCompletedBeatsOverdue(t *testing.T) {
	tasks := []task.Task{{ID: "old", Due: "2020-01-01", Completed: true}}
	b := Categorize(tasks, testRanges)

	if len(b.Overdue) != 0 {
		t.Errorf("a completed task must never appear in overdue")
	}
	if !equal(ids(b.Completed), []string{"old"}) {
		t.Errorf("completed = %v, want [old]", ids(b.Completed))
	}
}

func TestBoundaryExactness(t *testing.T) {
	tasks := []task.Task{
		{ID: "today", Due: "2024-06-10"},
		{ID: "tomorrow", Due: "2024-06-11"},
		{ID: "weekend", Due: "2024-06-17"},
		{ID: "beyond", Due: "2024-06-18"},
	}
	b := Categorize(tasks, testRanges)

	if len(b.Overdue) != 0 {
		t.Errorf("nothing here is overdue, got %v", ids(b.Overdue))
	}
	if !equal(ids(b.DueToday), []string{"today"}) {
		t.Errorf("dueToday = %v, want [today]", ids(b.DueToday))
	}
	if !equal(ids(b.DueTomorrow), []string{"tomorrow"}) {
		t.Errorf("dueTomorrow = %v, want [tomorrow]", ids(b.DueTomorrow))
	}
	// Exactly seven days out is in the week; tomorrow is not double
	// bucketed; eight days out is dropped.
	if !equal(ids(b.DueThisWeek), []string{"weekend"}) {
		t.Errorf("dueThisWeek = %v, want [weekend]", ids(b.DueThisWeek))
	}
	if b.Len() != 3 {
		t.Errorf("expected the beyond task to be dropped, bucketed %d", b.Len())
	}
}

func TestMutualExclusivity(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", Due: "2024-06-01"},
		{ID: "2", Due: "2024-06-10"},
		{ID: "3", Due: "2024-06-11"},
		{ID: "4", Due: "2024-06-14"},
		{ID: "5", Due: "2024-06-14", Completed: true},
		{ID: "6"},
	}
	b := Categorize(tasks, testRanges)

	seen := map[string]int{}
	for _, bucket := range [][]task.Task{b.Overdue, b.DueToday, b.DueTomorrow, b.DueThisWeek, b.Completed, b.Later} {
		for _, tk := range bucket {
			seen[tk.ID]++
		}
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("task %s appears in %d buckets", id, n)
		}
	}
	if seen["6"] != 0 {
		t.Errorf("task without due date should be dropped by default")
	}
}

func TestWithLaterCollectsDropped(t *testing.T) {
	tasks := []task.Task{
		{ID: "nodate"},
		{ID: "faraway", Due: "2024-07-01"},
		{ID: "today", Due: "2024-06-10"},
	}
	b := Categorize(tasks, testRanges, WithLater())

	if !equal(ids(b.Later), []string{"nodate", "faraway"}) {
		t.Errorf("later = %v, want [nodate faraway]", ids(b.Later))
	}
}

func TestStablePartition(t *testing.T) {
	tasks := []task.Task{
		{ID: "x", Due: "2024-06-02"},
		{ID: "y", Due: "2024-06-01"},
		{ID: "z", Due: "2024-06-03"},
	}
	b := Categorize(tasks, testRanges)
	if !equal(ids(b.Overdue), []string{"x", "y", "z"}) {
		t.Errorf("buckets must preserve input order, got %v", ids(b.Overdue))
	}
}

func TestFilterApply(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", Course: "Biology 101", Type: "Quiz"},
		{ID: "2", Course: "Biology 101", Type: "Lab"},
		{ID: "3", Course: "Chemistry 201", Type: "Quiz"},
	}

	if got := (Filter{}).Apply(tasks); len(got) != 3 {
		t.Errorf("zero filter should keep everything, kept %d", len(got))
	}
	if got := (Filter{Course: "Biology 101"}).Apply(tasks); !equal(ids(got), []string{"1", "2"}) {
		t.Errorf("course filter = %v, want [1 2]", ids(got))
	}
	if got := (Filter{Course: "Biology 101", Type: "Quiz"}).Apply(tasks); !equal(ids(got), []string{"1"}) {
		t.Errorf("combined filter = %v, want [1]", ids(got))
	}
}

func TestDeriveFacetsFirstOccurrenceOrder(t *testing.T) {
	tasks := []task.Task{
		{ID: "1", Course: "Chemistry 201", Type: "Quiz"},
		{ID: "2", Course: "Biology 101", Type: "Lab"},
		{ID: "3", Course: "Chemistry 201", Type: "Quiz"},
		{ID: "4"}, // empty values are not facets
	}
	f := DeriveFacets(tasks)

	if !equal(f.Courses, []string{"Chemistry 201", "Biology 101"}) {
		t.Errorf("courses = %v", f.Courses)
	}
	if !equal(f.Types, []string{"Quiz", "Lab"}) {
		t.Errorf("types = %v", f.Types)
	}
}
