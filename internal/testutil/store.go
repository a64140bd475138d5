package testutil

import (
	"testing"

	"ttask/internal/task"
)

// SeedStore builds a store whose to-do list holds todo and whose done
// list holds done, in the given order. Any rejected entry fails the test.
func SeedStore(t *testing.T, todo, done []task.Entry) *task.Store {
	t.Helper()

	s := task.New()
	if err := s.Add(todo...).Err(); err != nil {
		t.Fatalf("seed to-do list: %v", err)
	}
	if err := s.Add(done...).Err(); err != nil {
		t.Fatalf("seed done list: %v", err)
	}
	for _, e := range done {
		if res := s.Complete(e.Label); len(res.Missing) > 0 {
			t.Fatalf("seed done list: %q did not complete", e.Label)
		}
	}
	return s
}
