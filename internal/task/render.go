package task

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// View tokens accepted by CurrentState and Report. These keep the option
// spellings of the reporting interface, which differ from the Clear
// scopes: listings take "to-do" with a hyphen. View tokens are matched
// exactly; no trimming or case folding is applied.
const (
	ViewTodo = "to-do"
	ViewDone = "done"
	ViewAll  = "all"
)

// CurrentState renders a numbered listing of one list. which must be
// exactly "to-do" or "done". The store is not modified.
func (s *Store) CurrentState(which string) (string, error) {
	switch which {
	case ViewTodo:
		return formatTaskList(s.Todo(), ViewTodo), nil
	case ViewDone:
		return formatTaskList(s.Done(), ViewDone), nil
	}
	return "", fmt.Errorf("unknown view %q (want %q or %q): %w",
		which, ViewTodo, ViewDone, ErrInvalidArgument)
}

// Report renders a summary of the selected lists: a count line, a blank
// line, then the same numbered listings CurrentState produces. selector
// must be exactly "to-do", "done" or "all". The output is a pure function
// of the store contents; rendering twice on an unchanged store yields
// identical text.
func (s *Store) Report(selector string) (string, error) {
	todo, done := s.Todo(), s.Done()
	var b strings.Builder
	switch selector {
	case ViewTodo:
		fmt.Fprintf(&b, "%d to-do\n\n", len(todo))
		b.WriteString(formatTaskList(todo, ViewTodo))
	case ViewDone:
		fmt.Fprintf(&b, "%d done\n\n", len(done))
		b.WriteString(formatTaskList(done, ViewDone))
	case ViewAll:
		fmt.Fprintf(&b, "%d to-do, %d done\n\n", len(todo), len(done))
		b.WriteString(formatTaskList(todo, ViewTodo))
		b.WriteString("\n")
		b.WriteString(formatTaskList(done, ViewDone))
	default:
		return "", fmt.Errorf("unknown selector %q (want %q, %q or %q): %w",
			selector, ViewTodo, ViewDone, ViewAll, ErrInvalidArgument)
	}
	return b.String(), nil
}

// SaveReport renders the report for selector and writes it to path. The
// file handle is scoped to this call; it does not outlive it.
func (s *Store) SaveReport(path, selector string) error {
	text, err := s.Report(selector)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// String renders both lists compactly for fmt verbs and debug logs.
func (s *Store) String() string {
	return fmt.Sprintf("to-do: %s; done: %s", compact(s.Todo()), compact(s.Done()))
}

func compact(tasks []Task) string {
	if len(tasks) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(tasks))
	for i, t := range tasks {
		parts[i] = fmt.Sprintf("%s [%s]", t.Label, t.Priority)
	}
	return strings.Join(parts, ", ")
}

// formatTaskList renders one list as a table: a title, an ID/Task/Priority
// header, a dash rule, then one row per task numbered from 1 in insertion
// order. Numbers restart from 1 on every rendering; they are positions,
// not stable handles. The task column is sized to the longest label plus
// two. An empty list renders as a single "No ... tasks." line.
func formatTaskList(tasks []Task, which string) string {
	if len(tasks) == 0 {
		return fmt.Sprintf("No %s tasks.\n", which)
	}
	width := 0
	for _, t := range tasks {
		if n := len(t.Label); n > width {
			width = n
		}
	}
	width += 2

	var b strings.Builder
	fmt.Fprintf(&b, "%s Tasks:\n", cases.Title(language.English).String(which))
	fmt.Fprintf(&b, "%-4s %-*s %s\n", "ID", width, "Task", "Priority")
	fmt.Fprintf(&b, "%s %s %s\n",
		strings.Repeat("-", 4), strings.Repeat("-", width), strings.Repeat("-", 8))
	for i, t := range tasks {
		fmt.Fprintf(&b, "%-4d %-*s %s\n", i+1, width, t.Label, t.Priority.Display())
	}
	return b.String()
}
