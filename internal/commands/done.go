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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. Running it on a completed task
// marks it open again.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle", "undone"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task's completed mark" }
func (c *DoneCmd) Usage() string     { return "todopad done <n>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, ctl *controller.Controller, args []string, in io.Reader, out, errOut io.Writer) int {
	index, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintln(errOut, refErrorText(err))
		return exitcode.UserError
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return exitcode.UserError
	}
	return report(cfg, ctl.ToggleComplete(ctx, index), out, errOut)
}
