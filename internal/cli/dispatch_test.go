package cli_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ttask/internal/cli"
	"ttask/internal/commands"
	"ttask/internal/config"
	"ttask/internal/exitcode"
	"ttask/internal/task"
)

// testFactory creates a store factory that returns the given store.
func testFactory(store *task.Store) cli.StoreFactory {
	return func(cfg *config.Config, errOut io.Writer) (*task.Store, error) {
		return store, nil
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(task.New()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(task.New()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(task.New()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(task.New()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if stdout.String() != "ttask 0.1.0\n" {
		t.Errorf("expected 'ttask 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(task.New()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_NoArgsShowsBothLists(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(task.New()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	expected := "No to-do tasks.\n\nNo done tasks.\n"
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}
}

// The remaining tests exercise the real store factory end to end through
// a --config temp dir: flags must precede positional arguments.

func TestDispatcher_AddThenList(t *testing.T) {
	dir := t.TempDir()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(),
		[]string{"add", "--config", dir, "--priority", "high", "Ship the release"},
		&stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("add failed with exit code %d, stderr %q", code, stderr.String())
	}

	stdout.Reset()
	stderr.Reset()
	code = dispatcher.Run(context.Background(),
		[]string{"list", "--config", dir}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("list failed with exit code %d, stderr %q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Ship the release") {
		t.Errorf("expected the new task in the listing, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "High") {
		t.Errorf("expected the High priority in the listing, got %q", stdout.String())
	}
}

func TestDispatcher_CorruptStateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.StateFile)
	if err := os.WriteFile(path, []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(),
		[]string{"list", "--config", dir}, &stdout, &stderr)

	if code != exitcode.DataError {
		t.Errorf("expected exit code %d, got %d", exitcode.DataError, code)
	}
	if !strings.Contains(stderr.String(), "corrupt state file") {
		t.Errorf("expected corrupt state error, got %q", stderr.String())
	}
}

func TestDispatcher_QuietFlag(t *testing.T) {
	dir := t.TempDir()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(),
		[]string{"add", "--config", dir, "--quiet", "Buy milk"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("add failed with exit code %d, stderr %q", code, stderr.String())
	}
	if stdout.String() != "" {
		t.Errorf("expected no stdout in quiet mode, got %q", stdout.String())
	}
}

func TestDispatcher_SettingsDefaultPriority(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, config.SettingsFile)
	if err := os.WriteFile(settings, []byte("default_priority: high\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(),
		[]string{"add", "--config", dir, "Pay rent"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("add failed with exit code %d, stderr %q", code, stderr.String())
	}

	store := task.New()
	if err := store.Load(filepath.Join(dir, config.StateFile)); err != nil {
		t.Fatalf("load state file: %v", err)
	}
	todo := store.Todo()
	if len(todo) != 1 || todo[0].Priority != task.LevelHigh {
		t.Errorf("expected one high task, got %+v", todo)
	}
}

func TestDispatcher_BadDefaultPriorityWarns(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, config.SettingsFile)
	if err := os.WriteFile(settings, []byte("default_priority: urgent\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(),
		[]string{"add", "--config", dir, "Pay rent"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Fatalf("add failed with exit code %d, stderr %q", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "warning: ignoring default_priority") {
		t.Errorf("expected a default_priority warning, got %q", stderr.String())
	}

	store := task.New()
	if err := store.Load(filepath.Join(dir, config.StateFile)); err != nil {
		t.Fatalf("load state file: %v", err)
	}
	todo := store.Todo()
	if len(todo) != 1 || todo[0].Priority != task.LevelMedium {
		t.Errorf("expected the built-in medium default, got %+v", todo)
	}
}
