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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	yes bool
}

// SetYes skips the confirmation prompt (for testing).
func (c *RmCmd) SetYes(yes bool) {
	c.yes = yes
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "todopad rm [--yes] <n>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.yes, "yes", false, "")
	fs.BoolVar(&c.yes, "y", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, ctl *controller.Controller, args []string, in io.Reader, out, errOut io.Writer) int {
	index, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintln(errOut, refErrorText(err))
		return exitcode.UserError
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}
	ctl.SetPrompter(prompter(c.yes, in, errOut))
	return report(cfg, ctl.Delete(ctx, index), out, errOut)
}

// prompter returns the confirmation source for destructive commands.
// Questions go to errOut so they never mix with command output.
func prompter(yes bool, in io.Reader, errOut io.Writer) controller.Prompter {
	if yes {
		return controller.AlwaysYes
	}
	return NewLinePrompter(in, errOut)
}
