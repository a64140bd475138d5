// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown tokens,
	// rejected entries).
	UserError = 1

	// DataError indicates a corrupt task state file.
	DataError = 2

	// IOError indicates a state or report file that could not be read
	// or written.
	IOError = 3
)
