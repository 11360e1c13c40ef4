package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todopad/internal/config"
	"todopad/internal/controller"
	"todopad/internal/exitcode"
)

func init() {
	Register(&ClearCmd{})
}

// ClearCmd implements the clear command.
type ClearCmd struct {
	yes bool
}

// SetYes skips the confirmation prompt (for testing).
func (c *ClearCmd) SetYes(yes bool) {
	c.yes = yes
}

func (c *ClearCmd) Name() string      { return "clear" }
func (c *ClearCmd) Aliases() []string { return nil }
func (c *ClearCmd) Synopsis() string  { return "Delete all tasks" }
func (c *ClearCmd) Usage() string     { return "todopad clear [--yes]" }
func (c *ClearCmd) NeedsStore() bool  { return true }

func (c *ClearCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *ClearCmd) Run(ctx context.Context, cfg *config.Config, ctl *controller.Controller, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	ctl.SetPrompter(prompter(c.yes, in, errOut))
	return report(cfg, ctl.ClearAll(ctx), out, errOut)
}
