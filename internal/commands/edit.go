package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todopad/internal/config"
	"todopad/internal/controller"
	"todopad/internal/exitcode"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"rename"} }
func (c *EditCmd) Synopsis() string  { return "Change a task's text" }
func (c *EditCmd) Usage() string     { return "todopad edit <n> <text...>" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, ctl *controller.Controller, args []string, in io.Reader, out, errOut io.Writer) int {
	index, err := ParseTaskRef(args)
	if err != nil {
		fmt.Fprintln(errOut, refErrorText(err))
		return exitcode.UserError
	}
	return report(cfg, ctl.Edit(ctx, index, strings.Join(args[1:], " ")), out, errOut)
}
