package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"ttask/internal/config"
	"ttask/internal/exitcode"
	"ttask/internal/task"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "Show the task listings" }
func (c *ListCmd) Usage() string     { return "ttask list [to-do|done]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	// No view argument: show both lists.
	if len(args) == 0 {
		todo, _ := store.CurrentState(task.ViewTodo)
		done, _ := store.CurrentState(task.ViewDone)
		fmt.Fprint(out, todo)
		fmt.Fprintln(out)
		fmt.Fprint(out, done)
		return exitcode.Success
	}

	text, err := store.CurrentState(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	fmt.Fprint(out, text)
	return exitcode.Success
}
