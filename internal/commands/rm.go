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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"remove"} }
func (c *RmCmd) Synopsis() string  { return "Remove tasks from the to-do list" }
func (c *RmCmd) Usage() string     { return "ttask rm <label> [<label>...]" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task label required")
		return exitcode.UserError
	}

	res := store.Remove(args...)

	if len(res.Removed) > 0 {
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
	for _, t := range res.Removed {
		console.Info("removed", "task", t.Label)
	}
	for _, label := range res.Missing {
		console.Warn("not in the to-do list", "task", label)
	}
	return exitcode.Success
}
