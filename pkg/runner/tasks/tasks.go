// Package tasks provides the runner logic for the dashboard listing: fetch,
// normalize, filter, categorize, print.
package tasks

import (
	"context"
	"errors"
	"log"
	"time"

	"tableflip.dev/notify/pkg/buckets"
	"tableflip.dev/notify/pkg/dates"
	"tableflip.dev/notify/pkg/notion"
	"tableflip.dev/notify/pkg/printers"
	"tableflip.dev/notify/pkg/task"
)

// Source is what the listing needs from the remote database.
type Source interface {
	FetchTasks(ctx context.Context) ([]task.Record, error)
	CourseLookup(ctx context.Context) (task.Lookup, error)
}

// Tasks fetches and prints the categorized task list.
type Tasks struct {
	Source   Source
	Filter   buckets.Filter
	Later    bool
	ShowID   bool
	Facets   bool
	Location *time.Location
}

// Do executes the listing.
func (n *Tasks) Do(ctx context.Context) error {
	if n.Source == nil {
		return errors.New("can not list tasks, no source")
	}

	// A failed course lookup degrades to empty course names; it never
	// blocks the task fetch.
	lookup, err := n.Source.CourseLookup(ctx)
	if err != nil {
		log.Printf("course lookup failed, continuing without course names: %v", err)
		lookup = task.Lookup{}
	}

	recs, err := n.Source.FetchTasks(ctx)
	if err != nil {
		var authErr *notion.AuthError
		if errors.As(err, &authErr) {
			return errors.New("stored Notion credentials were rejected, run `notify auth` to reconnect")
		}
		return err
	}

	all := task.NormalizeAll(recs, lookup)
	facets := buckets.DeriveFacets(all)
	filtered := n.Filter.Apply(all)

	var opts []buckets.Option
	if n.Later {
		opts = append(opts, buckets.WithLater())
	}
	b := buckets.Categorize(filtered, dates.RangesAt(time.Now(), n.Location), opts...)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Buckets(b)
	if n.Facets {
		pp.Facets(facets)
	}
	return nil
}
