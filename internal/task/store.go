// Package task implements the ttask core: a to-do/done task registry with
// priority normalization, formatted views and flat-file persistence.
//
// A Store is single-threaded and synchronous. It holds no locks; callers
// that share one across goroutines must serialize access themselves.
package task

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Task is a single unit of work: a display label and its priority. The
// label doubles as the task's identity across both lists, compared
// case-insensitively.
type Task struct {
	Label    string
	Priority Level
}

// List tokens accepted by Clear.
const (
	ScopeTodo = "todo"
	ScopeDone = "done"
	ScopeAll  = "all"
)

// Store holds the to-do and done task lists. Within a store every label
// is unique: a task is either pending or completed, never both. The zero
// value is not usable; call New.
type Store struct {
	todo         *taskList
	done         *taskList
	defaultLevel Level
}

// Option configures a Store.
type Option func(*Store)

// WithDefaultLevel sets the priority assigned to entries added without
// one. Invalid levels are ignored and the built-in default stays.
func WithDefaultLevel(l Level) Option {
	return func(s *Store) {
		if l.valid() {
			s.defaultLevel = l
		}
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		todo:         newTaskList(),
		done:         newTaskList(),
		defaultLevel: DefaultLevel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Entry is one Add input: a label plus an optional priority token. An
// empty Priority selects the store's default level. The token may be a
// level name or a numeric rank; it is normalized once on entry and only
// the canonical Level travels further.
type Entry struct {
	Label    string
	Priority string
}

// EntryWithRank builds an Entry whose priority is the numeric rank n.
func EntryWithRank(label string, n int) Entry {
	return Entry{Label: label, Priority: strconv.Itoa(n)}
}

// RejectedEntry pairs a rejected Add entry with the reason.
type RejectedEntry struct {
	Entry Entry
	Err   error
}

// AddResult reports the outcome of a batch Add.
type AddResult struct {
	Added    []Task
	Rejected []RejectedEntry
}

// Err joins the rejection reasons, or returns nil if every entry was
// added.
func (r AddResult) Err() error {
	if len(r.Rejected) == 0 {
		return nil
	}
	errs := make([]error, len(r.Rejected))
	for i, rej := range r.Rejected {
		errs[i] = rej.Err
	}
	return errors.Join(errs...)
}

// Add inserts entries into the to-do list in the order supplied. Entries
// are validated one by one: an empty label or an unrecognized priority
// rejects that entry with an error unwrapping to ErrInvalidArgument, a
// label already present in either list rejects it with one unwrapping to
// ErrDuplicateLabel, and the remaining entries still apply.
func (s *Store) Add(entries ...Entry) AddResult {
	var res AddResult
	for _, e := range entries {
		if strings.TrimSpace(e.Label) == "" {
			res.Rejected = append(res.Rejected, RejectedEntry{
				Entry: e,
				Err:   fmt.Errorf("task label must not be empty: %w", ErrInvalidArgument),
			})
			continue
		}
		level := s.defaultLevel
		if e.Priority != "" {
			parsed, err := ParseLevel(e.Priority)
			if err != nil {
				res.Rejected = append(res.Rejected, RejectedEntry{
					Entry: e,
					Err:   fmt.Errorf("task %q: %w", e.Label, err),
				})
				continue
			}
			level = parsed
		}
		if s.todo.has(e.Label) || s.done.has(e.Label) {
			res.Rejected = append(res.Rejected, RejectedEntry{
				Entry: e,
				Err:   &DuplicateError{Label: e.Label},
			})
			continue
		}
		t := Task{Label: e.Label, Priority: level}
		s.todo.append(t)
		res.Added = append(res.Added, t)
	}
	return res
}

// CompleteResult reports which labels moved to the done list and which
// were not found in the to-do list.
type CompleteResult struct {
	Completed []Task
	Missing   []string
}

// Complete marks each label found in the to-do list as done, keeping the
// priority it was added with. Completed tasks append to the end of the
// done list in the order given. Labels not in the to-do list are
// collected in Missing; each is a no-op, not an error.
func (s *Store) Complete(labels ...string) CompleteResult {
	var res CompleteResult
	for _, label := range labels {
		t, ok := s.todo.remove(label)
		if !ok {
			res.Missing = append(res.Missing, label)
			continue
		}
		s.done.append(t)
		res.Completed = append(res.Completed, t)
	}
	return res
}

// RemoveResult reports which labels were deleted from the to-do list and
// which were not found there.
type RemoveResult struct {
	Removed []Task
	Missing []string
}

// Remove deletes each label from the to-do list. Labels not found there,
// including labels that sit in the done list, are collected in Missing
// and otherwise ignored.
func (s *Store) Remove(labels ...string) RemoveResult {
	var res RemoveResult
	for _, label := range labels {
		t, ok := s.todo.remove(label)
		if !ok {
			res.Missing = append(res.Missing, label)
			continue
		}
		res.Removed = append(res.Removed, t)
	}
	return res
}

// Clear empties the selected list. which must be exactly "todo", "done"
// or "all"; anything else is rejected with an error unwrapping to
// ErrInvalidArgument and the lists stay as they were.
func (s *Store) Clear(which string) error {
	switch which {
	case ScopeTodo:
		s.todo.clear()
	case ScopeDone:
		s.done.clear()
	case ScopeAll:
		s.todo.clear()
		s.done.clear()
	default:
		return fmt.Errorf("unknown list %q (want %q, %q or %q): %w",
			which, ScopeTodo, ScopeDone, ScopeAll, ErrInvalidArgument)
	}
	return nil
}

// Reset empties both lists.
func (s *Store) Reset() {
	s.todo.clear()
	s.done.clear()
}

// Todo returns the to-do tasks in insertion order.
func (s *Store) Todo() []Task {
	return s.todo.tasks()
}

// Done returns the done tasks in completion order.
func (s *Store) Done() []Task {
	return s.done.tasks()
}
