package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"ttask/internal/config"
	"ttask/internal/exitcode"
	"ttask/internal/output"
	"ttask/internal/task"
)

func init() {
	Register(&ClearCmd{})
	Register(&ResetCmd{})
}

// ClearCmd implements the clear command.
type ClearCmd struct{}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Empty the selected task list" }
func (c *ClearCmd) Usage() string     { return "ttask clear <todo|done|all>" }
func (c *ClearCmd) NeedsStore() bool  { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: list required (todo, done or all)")
		return exitcode.UserError
	}

	// Scope tokens fold to lowercase at the CLI boundary.
	which := strings.ToLower(strings.TrimSpace(args[0]))
	if err := store.Clear(which); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if err := cfg.EnsureDataDir(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
	if err := store.Save(cfg.DataFile); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}

	output.ForConfig(out, cfg).Info("cleared", "list", which)
	return exitcode.Success
}

// ResetCmd empties both lists; shorthand for clear all.
type ResetCmd struct{}

func (c *ResetCmd) Name() string      { return "reset" }
func (c *ResetCmd) Aliases() []string { return nil }
func (c *ResetCmd) Synopsis() string  { return "Empty both task lists (alias for clear all)" }
func (c *ResetCmd) Usage() string     { return "ttask reset" }
func (c *ResetCmd) NeedsStore() bool  { return true }

func (c *ResetCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ResetCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	if len(args) != 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	store.Reset()

	if err := cfg.EnsureDataDir(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
	if err := store.Save(cfg.DataFile); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}

	output.ForConfig(out, cfg).Info("cleared", "list", task.ScopeAll)
	return exitcode.Success
}
