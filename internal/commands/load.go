package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"ttask/internal/config"
	"ttask/internal/exitcode"
	"ttask/internal/output"
	"ttask/internal/task"
)

func init() {
	Register(&LoadCmd{})
}

// LoadCmd implements the load command: it replaces the in-memory state
// with the contents of an explicit file and persists the result to the
// configured state file.
type LoadCmd struct{}

func (c *LoadCmd) Name() string      { return "load" }
func (c *LoadCmd) Aliases() []string { return []string{"import"} }
func (c *LoadCmd) Synopsis() string  { return "Replace the task state from a file" }
func (c *LoadCmd) Usage() string     { return "ttask load <path>" }
func (c *LoadCmd) NeedsStore() bool  { return true }

func (c *LoadCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LoadCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: path required")
		return exitcode.UserError
	}
	path := args[0]

	console := output.ForConfig(out, cfg)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		// Nothing to import; current state stays as it is.
		console.Info("no state file, starting fresh", "path", path)
		return exitcode.Success
	}

	if err := store.Load(path); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		if errors.Is(err, task.ErrCorruptState) {
			return exitcode.DataError
		}
		return exitcode.IOError
	}

	if err := cfg.EnsureDataDir(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
	if err := store.Save(cfg.DataFile); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}

	console.Info("state loaded",
		"to-do", len(store.Todo()), "done", len(store.Done()))
	return exitcode.Success
}
