// Package task defines the canonical task entity and the normalizer that
// builds it from a raw Notion page record.
package task

import (
	"log"
	"time"

	"tableflip.dev/notify/pkg/dates"
)

// UntitledName is the display title used when a record has no title text.
const UntitledName = "Untitled Task"

// DefaultColor is the neutral color token applied when the source supplies
// none.
const DefaultColor = "default"

// Property names as they appear in the source database. The schema is owned
// by the Notion side; these are read-only conventions.
const (
	propName          = "Name"
	propDue           = "Due"
	propGrade         = "Worth %"
	propType          = "Type"
	propDone          = "Done"
	propStatus        = "Status"
	propCourse        = "Course"
	propCourseFormula = "Course notif form"
)

// Task is the normalized view-model entity. Instances are rebuilt on every
// fetch; the remote database stays the system of record. Completed is the
// only field the rest of the codebase mutates.
type Task struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Due       string   `json:"due,omitempty"` // YYYY-MM-DD, empty when absent
	Course    string   `json:"course"`
	Grade     *float64 `json:"grade"`
	Type      string   `json:"type"`
	TypeColor string   `json:"typeColor"`
	Completed bool     `json:"completed"`
	Countdown string   `json:"countdown,omitempty"`
}

// Lookup maps a course page id to its display name.
type Lookup map[string]string

// Record is a raw page as returned by the Notion query endpoint, reduced to
// the property shapes the normalizer consumes.
type Record struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}

// Property is the union of the property value shapes we read. Notion tags
// each property with a type; decoding them all as optional fields lets one
// struct cover every integration version seen in the wild.
type Property struct {
	Title    []RichText  `json:"title,omitempty"`
	RichText []RichText  `json:"rich_text,omitempty"`
	Date     *DateValue  `json:"date,omitempty"`
	Number   *float64    `json:"number,omitempty"`
	Select   *Option     `json:"select,omitempty"`
	Status   *Option     `json:"status,omitempty"`
	Checkbox *bool       `json:"checkbox,omitempty"`
	Formula  *Formula    `json:"formula,omitempty"`
	Relation []Reference `json:"relation,omitempty"`
}

// RichText is a fragment of title or rich_text content.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// DateValue is a date property payload.
type DateValue struct {
	Start string `json:"start"`
}

// Option is a select or status choice with its color token.
type Option struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Formula is a computed property; only string formulas are consumed.
type Formula struct {
	String string `json:"string"`
}

// Reference points at a page in another database.
type Reference struct {
	ID string `json:"id"`
}

func (r Record) prop(name string) Property {
	return r.Properties[name]
}

func plainText(fragments []RichText) string {
	if len(fragments) == 0 {
		return ""
	}
	return fragments[0].PlainText
}

// Normalize converts one raw record into a fully populated Task using the
// system timezone. Missing fields map to documented defaults; nothing here
// returns an error.
func Normalize(rec Record, lookup Lookup) Task {
	return NormalizeAt(rec, lookup, time.Now(), nil)
}

// NormalizeAll normalizes a batch in input order.
func NormalizeAll(recs []Record, lookup Lookup) []Task {
	now := time.Now()
	tasks := make([]Task, 0, len(recs))
	for _, rec := range recs {
		tasks = append(tasks, NormalizeAt(rec, lookup, now, nil))
	}
	return tasks
}

// NormalizeAt is Normalize with an explicit clock and timezone so the
// countdown label is reproducible.
func NormalizeAt(rec Record, lookup Lookup, now time.Time, loc *time.Location) Task {
	t := Task{
		ID:        rec.ID,
		Name:      UntitledName,
		Course:    resolveCourse(rec, lookup),
		TypeColor: DefaultColor,
	}

	if name := plainText(rec.prop(propName).Title); name != "" {
		t.Name = name
	}

	t.Due = resolveDue(rec)
	t.Countdown = dates.Countdown(t.Due, now, loc)
	t.Grade = rec.prop(propGrade).Number

	if sel := rec.prop(propType).Select; sel != nil {
		t.Type = sel.Name
		if sel.Color != "" {
			t.TypeColor = sel.Color
		}
	}

	t.Completed = resolveCompleted(rec)
	return t
}

// resolveDue extracts the due date and enforces the YYYY-MM-DD key invariant.
// Notion may hand back a datetime start; the calendar-date prefix is kept.
// Anything unparseable is treated as absent rather than failing the batch.
func resolveDue(rec Record) string {
	date := rec.prop(propDue).Date
	if date == nil || date.Start == "" {
		return ""
	}
	start := date.Start
	if len(start) > len(dates.KeyLayout) {
		start = start[:len(dates.KeyLayout)]
	}
	if _, err := time.Parse(dates.KeyLayout, start); err != nil {
		log.Printf("task: record %s has malformed due date %q, treating as absent", rec.ID, date.Start)
		return ""
	}
	return start
}

// resolveCourse runs the fallback chain: formula, relation via lookup, plain
// text, empty. A relation id missing from the lookup falls through; it is
// never an error.
func resolveCourse(rec Record, lookup Lookup) string {
	if f := rec.prop(propCourseFormula).Formula; f != nil && f.String != "" {
		return f.String
	}
	course := rec.prop(propCourse)
	if len(course.Relation) > 0 {
		if name, ok := lookup[course.Relation[0].ID]; ok && name != "" {
			return name
		}
	}
	if text := plainText(course.RichText); text != "" {
		return text
	}
	return ""
}

// resolveCompleted honors both schema generations: a Done checkbox and a
// Status select whose value is "Completed".
func resolveCompleted(rec Record) bool {
	if done := rec.prop(propDone).Checkbox; done != nil && *done {
		return true
	}
	status := rec.prop(propStatus)
	if status.Select != nil && status.Select.Name == "Completed" {
		return true
	}
	if status.Status != nil && status.Status.Name == "Completed" {
		return true
	}
	return false
}
