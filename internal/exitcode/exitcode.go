// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, bad status, out of range).
	UserError = 1

	// ConfigError indicates a configuration error (missing credentials).
	ConfigError = 2

	// BackendError indicates a backend/API/database error.
	BackendError = 3
)
