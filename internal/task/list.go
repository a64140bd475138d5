package task

import "strings"

// taskList is an ordered label-to-priority container. An entry slice
// preserves insertion order while a case-folded index gives constant-time
// membership checks. Label identity is case-insensitive; the spelling the
// task was first added with is the one kept and displayed.
type taskList struct {
	entries []Task
	index   map[string]int // fold(label) -> position in entries
}

func newTaskList() *taskList {
	return &taskList{index: make(map[string]int)}
}

func fold(label string) string {
	return strings.ToLower(label)
}

func (l *taskList) has(label string) bool {
	_, ok := l.index[fold(label)]
	return ok
}

// append adds a task to the end of the list. The caller has already
// checked that the label is not present.
func (l *taskList) append(t Task) {
	l.index[fold(t.Label)] = len(l.entries)
	l.entries = append(l.entries, t)
}

// remove deletes the task stored under label, keeping the order of the
// remaining entries. It returns the removed task and whether the label
// was present.
func (l *taskList) remove(label string) (Task, bool) {
	i, ok := l.index[fold(label)]
	if !ok {
		return Task{}, false
	}
	t := l.entries[i]
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
	delete(l.index, fold(label))
	for j := i; j < len(l.entries); j++ {
		l.index[fold(l.entries[j].Label)] = j
	}
	return t, true
}

func (l *taskList) clear() {
	l.entries = nil
	l.index = make(map[string]int)
}

// tasks returns a copy of the entries in insertion order.
func (l *taskList) tasks() []Task {
	out := make([]Task, len(l.entries))
	copy(out, l.entries)
	return out
}
