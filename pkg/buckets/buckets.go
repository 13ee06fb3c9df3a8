// Package buckets partitions tasks into the notification-center sections and
// derives the filter facets shown alongside them.
package buckets

import (
	"tableflip.dev/notify/pkg/dates"
	"tableflip.dev/notify/pkg/task"
)

// All is the sentinel filter value matching every course or type.
const All = ""

// Buckets is one categorization pass over a task list. The five primary
// buckets are mutually exclusive; Later is only populated when requested and
// collects tasks that would otherwise appear nowhere.
type Buckets struct {
	Overdue     []task.Task
	DueToday    []task.Task
	DueTomorrow []task.Task
	DueThisWeek []task.Task
	Completed   []task.Task
	Later       []task.Task
}

// Section pairs a bucket with its display title.
type Section struct {
	Title     string
	Tasks     []task.Task
	Countdown bool
}

type options struct {
	later bool
}

// Option adjusts categorization behaviour.
type Option func(*options)

// WithLater collects tasks with no due date or a due date beyond the week
// window into the Later bucket. Off by default: the notification view only
// cares about the coming week.
func WithLater() Option {
	return func(o *options) { o.later = true }
}

// Categorize partitions tasks using priority-ordered predicates against the
// given date ranges. A task lands in the first matching bucket only, and each
// bucket preserves the relative order of the input list. Completion beats
// every date predicate, so an overdue completed task is just completed.
//
// Date comparisons are plain string comparisons, valid because due dates and
// range boundaries share the fixed-width YYYY-MM-DD key format.
func Categorize(tasks []task.Task, r dates.Ranges, opts ...Option) Buckets {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var b Buckets
	for _, t := range tasks {
		switch {
		case t.Completed:
			b.Completed = append(b.Completed, t)
		case t.Due != "" && t.Due < r.Today:
			b.Overdue = append(b.Overdue, t)
		case t.Due == r.Today:
			b.DueToday = append(b.DueToday, t)
		case t.Due == r.Tomorrow:
			b.DueTomorrow = append(b.DueTomorrow, t)
		case t.Due > r.Today && t.Due <= r.WeekEnd:
			b.DueThisWeek = append(b.DueThisWeek, t)
		case o.later:
			b.Later = append(b.Later, t)
		}
	}
	return b
}

// Sections returns the buckets in display order.
func (b Buckets) Sections() []Section {
	sections := []Section{
		{Title: "Overdue", Tasks: b.Overdue, Countdown: true},
		{Title: "Due Today", Tasks: b.DueToday},
		{Title: "Due Tomorrow", Tasks: b.DueTomorrow},
		{Title: "Due This Week", Tasks: b.DueThisWeek, Countdown: true},
	}
	if b.Later != nil {
		sections = append(sections, Section{Title: "Later", Tasks: b.Later})
	}
	return append(sections, Section{Title: "Completed", Tasks: b.Completed})
}

// Len reports the total number of bucketed tasks.
func (b Buckets) Len() int {
	return len(b.Overdue) + len(b.DueToday) + len(b.DueTomorrow) +
		len(b.DueThisWeek) + len(b.Completed) + len(b.Later)
}

// Filter narrows a task list by exact course and type match. The zero value
// matches everything.
type Filter struct {
	Course string
	Type   string
}

// Apply returns the tasks passing the filter, preserving order.
func (f Filter) Apply(tasks []task.Task) []task.Task {
	if f.Course == All && f.Type == All {
		return tasks
	}
	kept := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Course != All && t.Course != f.Course {
			continue
		}
		if f.Type != All && t.Type != f.Type {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// Facets are the distinct filter choices present in a task list.
type Facets struct {
	Courses []string
	Types   []string
}

// DeriveFacets collects distinct non-empty course and type values in first
// occurrence order. It must be fed the pre-filter list so narrowing the view
// never narrows the available choices. The order is deliberately unsorted.
func DeriveFacets(tasks []task.Task) Facets {
	var f Facets
	courses := make(map[string]bool)
	types := make(map[string]bool)
	for _, t := range tasks {
		if t.Course != "" && !courses[t.Course] {
			courses[t.Course] = true
			f.Courses = append(f.Courses, t.Course)
		}
		if t.Type != "" && !types[t.Type] {
			types[t.Type] = true
			f.Types = append(f.Types, t.Type)
		}
	}
	return f
}
