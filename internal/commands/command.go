// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"github.com/charmbracelet/log"

	"todopad/internal/config"
	"todopad/internal/controller"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command reads or writes tasks.
	// Commands like help, version and note return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, paths).
	// ctl is nil if NeedsStore() returns false; otherwise its snapshot is loaded.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, ctl *controller.Controller, args []string, in io.Reader, out, errOut io.Writer) int
}

// TerminalOwner is implemented by commands that draw over the whole
// terminal. Their logs go to a file instead of stderr.
type TerminalOwner interface {
	OwnsTerminal() bool
}

// LoggerAware is implemented by commands that log on their own.
// The dispatcher hands them its logger before Run.
type LoggerAware interface {
	SetLogger(logger *log.Logger)
}
