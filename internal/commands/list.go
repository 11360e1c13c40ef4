package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todopad/internal/config"
	"todopad/internal/controller"
	"todopad/internal/exitcode"
	"todopad/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todopad` (no args) and `todopad list`.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "todopad list" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, ctl *controller.Controller, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks := ctl.Tasks()
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	output.FormatTasks(out, tasks)
	return exitcode.Success
}
