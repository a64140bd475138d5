package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"ttask/internal/config"
	"ttask/internal/exitcode"
	"ttask/internal/output"
	"ttask/internal/task"
)

func init() {
	Register(&ReportCmd{})
}

// ReportCmd implements the report command.
type ReportCmd struct {
	content string
	dir     string
	name    string
}

// SetContent sets the content selector (for testing).
func (c *ReportCmd) SetContent(content string) {
	c.content = content
}

// SetDir sets the destination directory (for testing).
func (c *ReportCmd) SetDir(dir string) {
	c.dir = dir
}

// SetName sets the destination filename (for testing).
func (c *ReportCmd) SetName(name string) {
	c.name = name
}

func (c *ReportCmd) Name() string      { return "report" }
func (c *ReportCmd) Aliases() []string { return nil }
func (c *ReportCmd) Synopsis() string  { return "Print a task report, or save it to a file" }
func (c *ReportCmd) Usage() string {
	return "ttask report [--content <to-do|done|all>] [--dir <dir>] [--name <file>]"
}
func (c *ReportCmd) NeedsStore() bool { return true }

func (c *ReportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.content, "content", "", "")
	fs.StringVar(&c.dir, "dir", "", "")
	fs.StringVar(&c.name, "name", "", "")
}

func (c *ReportCmd) Run(ctx context.Context, cfg *config.Config, store *task.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	content := c.content
	if content == "" {
		content = task.ViewAll
	}

	// Print to stdout unless a file destination was asked for.
	if c.dir == "" && c.name == "" {
		text, err := store.Report(content)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		fmt.Fprint(out, text)
		return exitcode.Success
	}

	dir := c.dir
	if dir == "" {
		dir = "."
	}
	name := c.name
	if name == "" {
		name = time.Now().Format("2006-01-02") + "_tasks.txt"
	}
	path := filepath.Join(dir, name)

	if err := store.SaveReport(path, content); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		if errors.Is(err, task.ErrInvalidArgument) {
			return exitcode.UserError
		}
		return exitcode.IOError
	}

	output.ForConfig(out, cfg).Info("report saved", "path", path)
	return exitcode.Success
}
