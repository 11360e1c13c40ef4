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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todopad help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, ctl *controller.Controller, args []string, in io.Reader, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todopad                                  List all tasks
  todopad list [common flags]              List all tasks
  todopad add [common flags] <text...>     Create a task
  todopad edit [common flags] <n> <text...>
  todopad done [common flags] <n>          Toggle the completed mark
  todopad rm [common flags] [--yes] <n>
  todopad clear [common flags] [--yes]
  todopad export [common flags] [--format txt|pdf] <path>
  todopad note [common flags] <path> [text...]
  todopad ui [common flags]                Interactive task list and note editor
  todopad help
  todopad version

Tasks are numbered as shown by 'todopad list'.

Common flags:
  --config <dir>   Override config directory
  --db <path>      Override task database path
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
