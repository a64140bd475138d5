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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "ttask help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  ttask                                     Show both task lists
  ttask list [to-do|done]                   Show one or both task lists
  ttask add [--priority <level>] <label> [<label>...]
  ttask done <label> [<label>...]           Mark to-do tasks as done
  ttask rm <label> [<label>...]             Remove tasks from the to-do list
  ttask clear <todo|done|all>               Empty the selected list
  ttask reset                               Empty both lists
  ttask report [--content <to-do|done|all>] [--dir <dir>] [--name <file>]
  ttask save [<path>]                       Write the task state to a file
  ttask load <path>                         Replace the task state from a file
  ttask help
  ttask version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs

Priorities are low, medium and high (or ranks 1-3); tasks added without
one get medium.
`
