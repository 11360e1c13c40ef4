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
	"todopad/internal/export"
)

func init() {
	Register(&ExportCmd{})
}

// ExportCmd implements the export command.
type ExportCmd struct {
	format string
}

// SetFormat sets the format flag (for testing).
func (c *ExportCmd) SetFormat(format string) {
	c.format = format
}

func (c *ExportCmd) Name() string      { return "export" }
func (c *ExportCmd) Aliases() []string { return []string{"save"} }
func (c *ExportCmd) Synopsis() string  { return "Save tasks to a file" }
func (c *ExportCmd) Usage() string     { return "todopad export [--format txt|pdf] <path>" }
func (c *ExportCmd) NeedsStore() bool  { return true }

func (c *ExportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.format, "format", "", "")
	fs.StringVar(&c.format, "f", "", "")
}

func (c *ExportCmd) Run(ctx context.Context, cfg *config.Config, ctl *controller.Controller, args []string, in io.Reader, out, errOut io.Writer) int {
	path := strings.TrimSpace(strings.Join(args, " "))
	if path == "" {
		fmt.Fprintln(errOut, "error: destination path required")
		return exitcode.UserError
	}

	format := export.FormatFor(path)
	if c.format != "" {
		var err error
		format, err = export.ParseFormat(c.format)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	return report(cfg, ctl.ExportAs(ctx, path, format), out, errOut)
}
