// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes shared by every command.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task, rejected input).
	UserError = 1

	// AuthError indicates an auth/config error (no session, bad credentials,
	// unreadable config).
	AuthError = 2

	// BackendError indicates a task API or network error.
	BackendError = 3
)
