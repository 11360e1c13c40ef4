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
	"todopad/internal/notes"
)

func init() {
	Register(&NoteCmd{})
}

// NoteCmd implements the note command. The note body comes from the
// remaining arguments, or from stdin when there are none.
type NoteCmd struct{}

func (c *NoteCmd) Name() string      { return "note" }
func (c *NoteCmd) Aliases() []string { return nil }
func (c *NoteCmd) Synopsis() string  { return "Save a text note to a file" }
func (c *NoteCmd) Usage() string     { return "todopad note <path> [text...]" }
func (c *NoteCmd) NeedsStore() bool  { return false }

func (c *NoteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *NoteCmd) Run(ctx context.Context, cfg *config.Config, ctl *controller.Controller, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(errOut, "error: destination path required")
		return exitcode.UserError
	}
	path := args[0]

	var text string
	if len(args) > 1 {
		text = strings.Join(args[1:], " ")
	} else {
		data, err := io.ReadAll(in)
		if err != nil {
			fmt.Fprintf(errOut, "error: could not read note: %v\n", err)
			return exitcode.IOError
		}
		text = string(data)
	}

	if err := notes.Save(path, text); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Note saved to %s\n", path)
	}
	return exitcode.Success
}
