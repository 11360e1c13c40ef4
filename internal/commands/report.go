package commands

import (
	"errors"
	"fmt"
	"io"

	"todopad/internal/config"
	"todopad/internal/controller"
	"todopad/internal/exitcode"
	"todopad/internal/export"
	"todopad/internal/service"
)

// report prints a controller status and maps it to an exit code.
// Info goes to out unless quiet; warnings and errors go to errOut.
func report(cfg *config.Config, s controller.Status, out, errOut io.Writer) int {
	switch s.Level {
	case controller.Info:
		if !cfg.Quiet {
			fmt.Fprintln(out, s.Text)
		}
		return exitcode.Success
	case controller.Warning:
		fmt.Fprintf(errOut, "error: %s\n", s.Text)
		return exitcode.UserError
	case controller.Error:
		fmt.Fprintf(errOut, "error: %s\n", s.Text)
		return errorCode(s.Err)
	default:
		if !cfg.Quiet {
			fmt.Fprintln(out, "cancelled")
		}
		return exitcode.Success
	}
}

// errorCode picks the exit code for a failure cause.
func errorCode(err error) int {
	var we *export.WriteError
	switch {
	case errors.As(err, &we):
		return exitcode.IOError
	case service.IsStorageError(err):
		return exitcode.StorageError
	case errors.Is(err, service.ErrEmptyText):
		return exitcode.UserError
	default:
		return exitcode.IOError
	}
}
