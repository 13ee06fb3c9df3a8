// Package complete provides the runner logic for toggling a task's
// completion flag against the remote database.
package complete

import (
	"context"
	"errors"
	"log"
	"time"

	"tableflip.dev/notify/pkg/buckets"
	"tableflip.dev/notify/pkg/completion"
	"tableflip.dev/notify/pkg/dates"
	"tableflip.dev/notify/pkg/printers"
	"tableflip.dev/notify/pkg/task"
)

// Source extends the syncer's view with the course lookup.
type Source interface {
	completion.Source
	CourseLookup(ctx context.Context) (task.Lookup, error)
}

// Complete toggles the completion state of one task.
type Complete struct {
	ID       string
	Source   Source
	Later    bool
	Location *time.Location
}

// Do fetches the current list, toggles the task, and prints the resulting
// buckets. The toggle is optimistic with rollback; a failed commit leaves
// the remote state untouched and reports the error.
func (n *Complete) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: true}

	if n.Source == nil {
		return errors.New("can not complete, no source")
	}

	lookup, err := n.Source.CourseLookup(ctx)
	if err != nil {
		log.Printf("course lookup failed, continuing without course names: %v", err)
		lookup = task.Lookup{}
	}

	recs, err := n.Source.FetchTasks(ctx)
	if err != nil {
		return err
	}
	all := task.NormalizeAll(recs, lookup)

	syncer := completion.Syncer{Source: n.Source, Lookup: lookup, Refetch: true}
	all, err = syncer.Toggle(ctx, all, n.ID)
	if err != nil {
		return err
	}

	var opts []buckets.Option
	if n.Later {
		opts = append(opts, buckets.WithLater())
	}
	b := buckets.Categorize(all, dates.RangesAt(time.Now(), n.Location), opts...)

	pp.NewLine()
	pp.Buckets(b)
	return nil
}
