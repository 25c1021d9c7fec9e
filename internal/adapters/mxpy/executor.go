package mxpy

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os/exec"
	"syscall"
	"time"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
)

// Exit codes a POSIX shell reports for commands it cannot run
const (
	ExitNotExecutable = 126
	ExitNotFound      = 127
)

// ToolRunnerAdapter runs the external tool as a subprocess
type ToolRunnerAdapter struct {
	log *slog.Logger
}

// NewToolRunnerAdapter creates a new tool runner
func NewToolRunnerAdapter(log *slog.Logger) *ToolRunnerAdapter {
	return &ToolRunnerAdapter{
		log: log.With("component", "ToolRunnerAdapter"),
	}
}

// Run executes the command in its working directory and waits for it to exit.
// Stdout and stderr are captured into a single buffer.
func (r *ToolRunnerAdapter) Run(ctx context.Context, command *domain.ToolCommand) (*domain.InvocationResult, error) {
	start := time.Now()
	r.log.Debug("running tool", "binary", command.Binary, "args", command.Args, "dir", command.Dir)

	cmd := exec.CommandContext(ctx, command.Binary, command.Args...)
	cmd.Dir = command.Dir

	output, err := cmd.CombinedOutput()
	duration := time.Since(start)
	result := &domain.InvocationResult{Output: output}

	if err == nil {
		r.log.Debug("tool completed successfully", "duration", duration)
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitCode(exitErr)
		r.log.Debug("tool exited with failure", "code", result.ExitCode, "duration", duration)
		return result, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	// The process never started. Report it the way a shell would.
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		result.ExitCode = ExitNotFound
	case errors.Is(err, fs.ErrPermission):
		result.ExitCode = ExitNotExecutable
	default:
		return nil, fmt.Errorf("failed to start %s: %w", command.Binary, err)
	}
	result.Output = fmt.Appendf(nil, "%s: %v\n", command.Binary, err)
	r.log.Debug("tool could not be started", "error", err, "code", result.ExitCode)

	return result, nil
}

// exitCode returns the process exit status, or 128+signal when it was killed
func exitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return exitErr.ExitCode()
}

// Ensure the adapter implements the interface
var _ usecase.ToolRunner = (*ToolRunnerAdapter)(nil)
