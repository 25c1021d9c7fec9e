package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain"
)

// reportedError marks an error a renderer has already shown to the user
type reportedError struct {
	err error
}

func reported(err error) error {
	return &reportedError{err: err}
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// ExitCode maps a command error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder domain.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// HandleError prints err unless it was already reported
func HandleError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var r *reportedError
	if errors.As(err, &r) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	HandleError(rootCmd.ErrOrStderr(), err)
	return ExitCode(err)
}
