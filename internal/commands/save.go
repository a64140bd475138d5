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
	Register(&SaveCmd{})
}

// SaveCmd implements the save command. Without a path it rewrites the
// configured state file; mutating commands already do that on every
// change, so the explicit form mostly serves exporting state elsewhere.
type SaveCmd struct{}

func (c *SaveCmd) Name() string      { return "save" }
func (c *SaveCmd) Aliases() []string { return nil }
func (c *SaveCmd) Synopsis() string  { return "Write the task state to a file" }
func (c *SaveCmd) Usage() string     { return "ttask save [<path>]" }
func (c *SaveCmd) NeedsStore() bool  { return true }

func (c *SaveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SaveCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}

	path := cfg.DataFile
	if len(args) == 1 {
		path = args[0]
	} else if err := cfg.EnsureDataDir(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}

	if err := store.Save(path); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}

	output.ForConfig(out, cfg).Info("state saved", "path", path)
	return exitcode.Success
}
