package usecase

import (
	"context"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
)

// ArtifactChecker verifies the compiled bytecode is present before a deployment
type ArtifactChecker interface {
	// CheckArtifact returns a *domain.ArtifactMissingError when the artifact is absent
	CheckArtifact(ctx context.Context, path string) error
}

// DeployCommandBuilder assembles the external tool invocation
type DeployCommandBuilder interface {
	BuildDeployCommand(cfg config.DeployConfig) *domain.ToolCommand
}

// ToolRunner executes the external tool and waits for it to exit
type ToolRunner interface {
	// Run returns a result for every process that ran or could not be started.
	// A non-nil error means the run outcome is unknown.
	Run(ctx context.Context, cmd *domain.ToolCommand) (*domain.InvocationResult, error)
}

// ReceiptReader parses the output file the tool writes after a deployment
type ReceiptReader interface {
	ReadReceipt(ctx context.Context, path string) (*domain.DeployReceipt, error)
}

// DeployConfirmer asks the operator to approve a deployment
type DeployConfirmer interface {
	ConfirmDeploy(ctx context.Context, cfg config.DeployConfig) (bool, error)
}

// DeployReporter echoes the invocation as it happens
type DeployReporter interface {
	// ReportCommand is called with the exact command before it runs
	ReportCommand(cmd *domain.ToolCommand)
	// ReportOutput is called with the captured output once the tool exits
	ReportOutput(output []byte)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
