package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ttask/internal/config"
	"ttask/internal/exitcode"
	"ttask/internal/output"
	"ttask/internal/task"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark to-do tasks as done" }
func (c *DoneCmd) Usage() string     { return "ttask done <label> [<label>...]" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task label required")
		return exitcode.UserError
	}

	res := store.Complete(args...)

	if len(res.Completed) > 0 {
		if err := cfg.EnsureDataDir(); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.IOError
		}
		if err := store.Save(cfg.DataFile); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.IOError
		}
	}

	console := output.ForConfig(out, cfg)
	for _, t := range res.Completed {
		console.Info("done", "task", t.Label)
	}
	for _, label := range res.Missing {
		console.Warn("not in the to-do list", "task", label)
	}
	return exitcode.Success
}
