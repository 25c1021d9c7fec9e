package domain

import (
	"errors"
	"fmt"
)

// ExitCoder is implemented by errors that carry a process exit status
type ExitCoder interface {
	ExitCode() int
}

// ErrDeployAborted is returned when the operator declines the deployment
var ErrDeployAborted = errors.New("deployment aborted")

// ArtifactMissingError is returned when the compiled bytecode is not on disk
type ArtifactMissingError struct {
	Path string
	// BuildHint is the command that produces the artifact
	BuildHint string
}

func (e *ArtifactMissingError) Error() string {
	return fmt.Sprintf("missing wasm file: %s", e.Path)
}

func (e *ArtifactMissingError) ExitCode() int {
	return 1
}

// ToolFailedError is returned when the external tool exits non-zero.
// The exit code is the tool's own and is propagated unchanged.
type ToolFailedError struct {
	Binary string
	Code   int
}

func (e *ToolFailedError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Binary, e.Code)
}

func (e *ToolFailedError) ExitCode() int {
	return e.Code
}
