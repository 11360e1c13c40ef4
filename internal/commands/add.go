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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "todopad add <text...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, ctl *controller.Controller, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}
	return report(cfg, ctl.Add(ctx, strings.Join(args, " ")), out, errOut)
}
