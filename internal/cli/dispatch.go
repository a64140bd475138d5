// Package cli parses arguments and dispatches to commands.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"ttask/internal/commands"
	"ttask/internal/config"
	"ttask/internal/exitcode"
	"ttask/internal/task"
)

// StoreFactory opens the task store for commands that need one.
// Used to inject a prepared store during tests.
type StoreFactory func(cfg *config.Config, errOut io.Writer) (*task.Store, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  StoreFactory
}

// NewDispatcher creates a dispatcher with the given registry and store
// factory. A nil factory falls back to DefaultFactory.
func NewDispatcher(registry *commands.Registry, factory StoreFactory) *Dispatcher {
	if factory == nil {
		factory = DefaultFactory
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// DefaultFactory builds the store from cfg: it applies the configured
// default priority and loads the state file if one exists.
func DefaultFactory(cfg *config.Config, errOut io.Writer) (*task.Store, error) {
	var opts []task.Option
	if cfg.DefaultPriority != "" {
		level, err := task.ParseLevel(cfg.DefaultPriority)
		if err != nil {
			fmt.Fprintf(errOut, "warning: ignoring default_priority: %v\n", err)
		} else {
			opts = append(opts, task.WithDefaultLevel(level))
		}
	}

	store := task.New(opts...)
	if err := store.Load(cfg.DataFile); err != nil {
		return nil, err
	}
	return store, nil
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()
		if strings.HasPrefix(errStr, "flag provided but not defined: ") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return exitcode.UserError
	}

	// A leading dash in the positionals means a flag slipped past parsing
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	// Flags force the settings on; the settings file cannot be overridden
	// back off from the command line.
	if quiet {
		cfg.Quiet = true
	}
	if debug {
		cfg.Debug = true
	}

	var store *task.Store
	if cmd.NeedsStore() {
		store, err = d.factory(cfg, errOut)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			if errors.Is(err, task.ErrCorruptState) {
				return exitcode.DataError
			}
			return exitcode.IOError
		}
	}

	return cmd.Run(ctx, cfg, store, positionalArgs, out, errOut)
}
