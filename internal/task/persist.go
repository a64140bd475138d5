package task

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed state.schema.json
var stateSchema string

// compiledSchema guards the structural shape of the state file: required
// keys, list-of-object layout, field types. Priority values are checked
// by the normalizer, the single authority on which spellings are valid.
var compiledSchema = jsonschema.MustCompileString("state.schema.json", stateSchema)

// stateRecord is one persisted task. Priority is written in its canonical
// lowercase form; on read, Level also admits numeric ranks.
type stateRecord struct {
	Label    string `json:"label"`
	Priority Level  `json:"priority"`
}

// stateFile is the on-disk layout: two ordered lists, so a reload
// restores insertion order exactly as written.
type stateFile struct {
	Todo []stateRecord `json:"todo"`
	Done []stateRecord `json:"done"`
}

// Save serializes both lists to path, creating or truncating the file.
// The output is deterministic; saving an unchanged store twice produces
// identical bytes.
func (s *Store) Save(path string) error {
	state := stateFile{
		Todo: recordsOf(s.Todo()),
		Done: recordsOf(s.Done()),
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

func recordsOf(tasks []Task) []stateRecord {
	records := make([]stateRecord, len(tasks))
	for i, t := range tasks {
		records[i] = stateRecord{Label: t.Label, Priority: t.Priority}
	}
	return records
}

// Load reads the state file at path and replaces both lists with its
// contents. A missing file is not an error; the store keeps its current
// state. A file that exists but does not parse, validate or satisfy the
// label rules is reported as an error unwrapping to ErrCorruptState, and
// on every failure the in-memory lists are left exactly as they were.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read state: %w", err)
	}

	state, err := decodeState(data)
	if err != nil {
		return &CorruptStateError{Path: path, Reason: err}
	}

	todo := newTaskList()
	done := newTaskList()
	for _, rec := range state.Todo {
		if err := checkRecord(rec, todo, done); err != nil {
			return &CorruptStateError{Path: path, Reason: err}
		}
		todo.append(Task{Label: rec.Label, Priority: rec.Priority})
	}
	for _, rec := range state.Done {
		if err := checkRecord(rec, todo, done); err != nil {
			return &CorruptStateError{Path: path, Reason: err}
		}
		done.append(Task{Label: rec.Label, Priority: rec.Priority})
	}

	s.todo = todo
	s.done = done
	return nil
}

// decodeState validates data against the embedded schema and decodes it.
func decodeState(data []byte) (*stateFile, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := compiledSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	var state stateFile
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// checkRecord enforces the semantic rules the schema cannot express:
// labels must not be blank and must be unique across both lists, ignoring
// case.
func checkRecord(rec stateRecord, todo, done *taskList) error {
	if strings.TrimSpace(rec.Label) == "" {
		return fmt.Errorf("blank task label")
	}
	if todo.has(rec.Label) || done.has(rec.Label) {
		return fmt.Errorf("duplicate label %q", rec.Label)
	}
	return nil
}
