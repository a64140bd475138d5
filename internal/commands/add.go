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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	priority string
}

// SetPriority sets the priority token (for testing).
func (c *AddCmd) SetPriority(p string) {
	c.priority = p
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add tasks to the to-do list" }
func (c *AddCmd) Usage() string {
	return "ttask add [--priority <level>] <label> [<label>...]"
}
func (c *AddCmd) NeedsStore() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task label required")
		return exitcode.UserError
	}

	// Each positional argument is one label; the priority flag applies
	// to all of them.
	entries := make([]task.Entry, len(args))
	for i, label := range args {
		entries[i] = task.Entry{Label: label, Priority: c.priority}
	}
	res := store.Add(entries...)

	if len(res.Added) > 0 {
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
	for _, t := range res.Added {
		console.Info("added", "task", t.Label, "priority", t.Priority.String())
	}
	for _, rej := range res.Rejected {
		fmt.Fprintf(errOut, "error: %v\n", rej.Err)
	}

	if len(res.Rejected) > 0 {
		return exitcode.UserError
	}
	return exitcode.Success
}
