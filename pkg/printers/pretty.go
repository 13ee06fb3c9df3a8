// Package printers renders buckets and lookup tables for the terminal.
package printers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/notify/pkg/buckets"
	"tableflip.dev/notify/pkg/task"
)

const (
	bulletOpen = "●"
	bulletDone = "✘"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("269a5ebae7ac803c  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Section prints one bucket with its title. Empty sections render a faint
// "none" so the layout stays stable.
func (pp *PrettyPrint) Section(s buckets.Section) {
	pp.TitleWithCount(s.Title, len(s.Tasks))
	pp.Tasks(s.Countdown, s.Tasks...)
}

// Buckets prints a full categorization pass in display order.
func (pp *PrettyPrint) Buckets(b buckets.Buckets) {
	for _, s := range b.Sections() {
		pp.Section(s)
	}
}

func (pp *PrettyPrint) Tasks(countdown bool, tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	for _, tk := range tasks {
		if pp.ShowID {
			id := tk.ID
			if len(id) > len(spacing)-2 {
				id = id[:len(spacing)-2]
			}
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		bullet := bulletOpen
		if tk.Completed {
			bullet = bulletDone
		}
		_, _ = t.Printf("%s %s", bullet, tk.Name)
		if tk.Type != "" {
			_, _ = TypeColor(tk.TypeColor).Printf("  %s", tk.Type)
		}
		if tk.Course != "" {
			_, _ = faint.Printf("  %s", tk.Course)
		}
		if countdown && tk.Countdown != "" {
			_, _ = faint.Printf("  (%s)", tk.Countdown)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Facets prints the available filter values under the buckets.
func (pp *PrettyPrint) Facets(f buckets.Facets) {
	faint := color.New(color.Faint)
	if len(f.Courses) > 0 {
		_, _ = faint.Printf("courses: %s\n", strings.Join(f.Courses, ", "))
	}
	if len(f.Types) > 0 {
		_, _ = faint.Printf("types: %s\n", strings.Join(f.Types, ", "))
	}
}

// Courses renders the course lookup table sorted by name.
func (pp *PrettyPrint) Courses(lookup task.Lookup) {
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("COURSE", "PAGE ID")

	type row struct{ name, id string }
	rows := make([]row, 0, len(lookup))
	for id, name := range lookup {
		rows = append(rows, row{name: name, id: id})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].name == rows[j].name {
			return rows[i].id < rows[j].id
		}
		return rows[i].name < rows[j].name
	})
	for _, r := range rows {
		table.AddRow(r.name, r.id)
	}
	fmt.Println(table)
}
