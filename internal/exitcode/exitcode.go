// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including a declined confirmation.
	Success = 0

	// UserError indicates a user error (bad args, empty text, no such task number).
	UserError = 1

	// ConfigError indicates the configuration could not be loaded.
	ConfigError = 2

	// StorageError indicates the task database could not be opened, read or written.
	StorageError = 3

	// IOError indicates an export or note destination could not be written.
	IOError = 4
)
