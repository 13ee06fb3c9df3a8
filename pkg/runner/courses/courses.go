// Package courses provides the runner logic for printing the course lookup
// table.
package courses

import (
	"context"
	"errors"

	"tableflip.dev/notify/pkg/printers"
	"tableflip.dev/notify/pkg/task"
)

// Source is the secondary-database view needed to build the lookup.
type Source interface {
	CourseLookup(ctx context.Context) (task.Lookup, error)
}

// Courses prints the id to display-name table.
type Courses struct {
	Source Source
}

// Do builds and prints the lookup.
func (n *Courses) Do(ctx context.Context) error {
	if n.Source == nil {
		return errors.New("can not list courses, no source")
	}
	lookup, err := n.Source.CourseLookup(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.TitleWithCount("Courses", len(lookup))
	if len(lookup) == 0 {
		return nil
	}
	pp.Courses(lookup)
	return nil
}
