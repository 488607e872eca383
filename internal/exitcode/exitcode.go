// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion. Handled task failures
	// (duplicate ID, unknown ID, malformed entry) also exit with Success.
	Success = 0

	// UserError indicates a usage error (unknown command or flag, bad id).
	UserError = 1

	// ConfigError indicates the configuration could not be loaded.
	ConfigError = 2

	// StoreError indicates the task files could not be read or written.
	StoreError = 3
)
