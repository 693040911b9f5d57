package domain

import (
	"errors"
	"strconv"
)

// ExitError carries the exit status of a failed child process through an
// error chain so the wrapper can exit with the same code.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return "exit status " + strconv.Itoa(e.Code)
}

// ExitCode extracts the child exit status buried in err's chain.
// It returns fallback when the chain carries no ExitError.
func ExitCode(err error, fallback int) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return fallback
}
