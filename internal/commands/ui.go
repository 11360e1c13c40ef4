package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"todopad/internal/config"
	"todopad/internal/controller"
	"todopad/internal/exitcode"
	"todopad/internal/ui"
)

func init() {
	Register(&UICmd{})
}

// UICmd implements the ui command.
type UICmd struct {
	logger *log.Logger
}

func (c *UICmd) Name() string       { return "ui" }
func (c *UICmd) Aliases() []string  { return []string{"tui"} }
func (c *UICmd) Synopsis() string   { return "Interactive task list and note editor" }
func (c *UICmd) Usage() string      { return "todopad ui" }
func (c *UICmd) NeedsStore() bool   { return true }
func (c *UICmd) OwnsTerminal() bool { return true }

// SetLogger implements LoggerAware.
func (c *UICmd) SetLogger(logger *log.Logger) {
	c.logger = logger
}

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, ctl *controller.Controller, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if !ui.IsTTY(out) {
		fmt.Fprintln(errOut, "error: ui requires a terminal")
		return exitcode.UserError
	}

	if err := ui.Run(ctx, ctl, c.logger); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
	return exitcode.Success
}
