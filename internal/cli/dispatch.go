package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todopad/internal/commands"
	"todopad/internal/config"
	"todopad/internal/controller"
	"todopad/internal/exitcode"
	"todopad/internal/logging"
	"todopad/internal/service"
)

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, logger *log.Logger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, "list", nil, in, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], in, out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, in io.Reader, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, in, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, in io.Reader, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var dbPath string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&dbPath, "db", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		fmt.Fprintln(errOut, flagErrorText(err))
		return exitcode.UserError
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	cfg.Quiet = quiet
	cfg.Debug = debug

	logger, closeLog, err := d.logger(cfg, cmd, errOut)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	defer closeLog()
	if la, ok := cmd.(commands.LoggerAware); ok {
		la.SetLogger(logger)
	}

	if !cmd.NeedsStore() {
		return cmd.Run(ctx, cfg, nil, positionalArgs, in, out, errOut)
	}

	if d.factory == nil {
		fmt.Fprintln(errOut, "error: no task store configured")
		return exitcode.ConfigError
	}
	svc, err := d.factory(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.StorageError
	}
	if err := svc.Init(ctx); err != nil {
		fmt.Fprintf(errOut, "error: could not open task store: %s\n", err)
		return exitcode.StorageError
	}

	ctl := controller.New(svc, commands.NewLinePrompter(in, errOut), logger)
	if s := ctl.Refresh(ctx); s.Level == controller.Error {
		fmt.Fprintf(errOut, "error: %s\n", s.Text)
		return exitcode.StorageError
	}

	return cmd.Run(ctx, cfg, ctl, positionalArgs, in, out, errOut)
}

// logger builds the logger for one command run. Commands that own the
// terminal log to a file in the config directory.
func (d *Dispatcher) logger(cfg *config.Config, cmd commands.Command, errOut io.Writer) (*log.Logger, func(), error) {
	if to, ok := cmd.(commands.TerminalOwner); ok && to.OwnsTerminal() {
		if err := cfg.EnsureDir(); err != nil {
			return nil, nil, err
		}
		f, err := logging.OpenFile(cfg.LogPath())
		if err != nil {
			return nil, nil, err
		}
		return logging.NewFromConfig(f, cfg.EffectiveLogLevel(), cfg.LogFormat), func() { f.Close() }, nil
	}
	return logging.NewFromConfig(errOut, cfg.EffectiveLogLevel(), cfg.LogFormat), func() {}, nil
}

// flagErrorText turns a flag package error into a one-line message.
func flagErrorText(err error) string {
	errStr := err.Error()

	// Check for missing flag value
	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		return "error: flag needs an argument: " + flagName
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		return "error: unknown flag: " + flagName
	}

	return "error: " + errStr
}
