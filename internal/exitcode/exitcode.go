// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, not found).
	UserError = 1

	// ConfigError indicates a configuration error (no base URL, bad config file).
	ConfigError = 2

	// BackendError indicates a remote service or network error.
	BackendError = 3
)
