// Package completion implements the optimistic completion toggle: flip
// locally, commit remotely, roll back on failure.
package completion

import (
	"context"
	"fmt"
	"log"

	"tableflip.dev/notify/pkg/task"
)

// Source is the narrow view of the remote task database the syncer needs.
// pkg/notion provides the real implementation.
type Source interface {
	// FetchTasks returns all raw records; an empty result is not an error.
	FetchTasks(ctx context.Context) ([]task.Record, error)
	// UpdateCompletion sets the completion flag on one page.
	UpdateCompletion(ctx context.Context, pageID string, completed bool) error
}

// SyncError reports a toggle that could not be committed remotely. The local
// state has already been rolled back by the time the caller sees it.
type SyncError struct {
	TaskID string
	Err    error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("completion: sync of task %s failed: %v", e.TaskID, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// Syncer toggles completion flags against a Source. Callers own the task
// slice and must not issue a second toggle for the same id while one is in
// flight; the syncer does not queue or de-duplicate.
type Syncer struct {
	Source Source
	Lookup task.Lookup
	// Refetch replaces local state wholesale from the source after a
	// successful commit (last fetch wins, no merging).
	Refetch bool
}

// Toggle flips the completion flag of the task with the given id. The flip is
// applied to tasks in place before the remote call so the caller can paint
// immediately; on remote failure it is reverted and a *SyncError returned.
// On success the returned slice is either tasks itself or, with Refetch set,
// a freshly fetched and normalized replacement.
func (s *Syncer) Toggle(ctx context.Context, tasks []task.Task, id string) ([]task.Task, error) {
	idx := -1
	for i := range tasks {
		if tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return tasks, &SyncError{TaskID: id, Err: fmt.Errorf("no task with id %s", id)}
	}

	was := tasks[idx].Completed
	tasks[idx].Completed = !was

	if err := s.Source.UpdateCompletion(ctx, id, !was); err != nil {
		tasks[idx].Completed = was
		return tasks, &SyncError{TaskID: id, Err: err}
	}

	if !s.Refetch {
		return tasks, nil
	}

	recs, err := s.Source.FetchTasks(ctx)
	if err != nil {
		// The commit already landed; a failed resync leaves the
		// optimistic state standing until the next fetch.
		log.Printf("completion: post-commit refetch failed: %v", err)
		return tasks, nil
	}
	return task.NormalizeAll(recs, s.Lookup), nil
}
