package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
)

// DeployContractParams contains parameters for a deployment run
type DeployContractParams struct {
	// DryRun assembles and echoes the command without running it
	DryRun bool
	// AssumeYes skips the mainnet confirmation prompt
	AssumeYes bool
}

// DeployContractResult contains the outcome of a deployment run
type DeployContractResult struct {
	Config     config.DeployConfig
	Command    *domain.ToolCommand
	DryRun     bool
	Invocation *domain.InvocationResult

	// Receipt is nil when the output file could not be read, see ReceiptErr
	Receipt    *domain.DeployReceipt
	ReceiptErr error
}

// DeployContract publishes the compiled contract through the external tool
type DeployContract struct {
	config    *config.RuntimeConfig
	artifacts ArtifactChecker
	builder   DeployCommandBuilder
	runner    ToolRunner
	receipts  ReceiptReader
	confirmer DeployConfirmer
	reporter  DeployReporter
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	artifacts ArtifactChecker,
	builder DeployCommandBuilder,
	runner ToolRunner,
	receipts ReceiptReader,
	confirmer DeployConfirmer,
	reporter DeployReporter,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:    cfg,
		artifacts: artifacts,
		builder:   builder,
		runner:    runner,
		receipts:  receipts,
		confirmer: confirmer,
		reporter:  reporter,
		progress:  progress,
		log:       log.With("component", "DeployContract"),
	}
}

// Run executes the deployment.
//
// A missing artifact returns *domain.ArtifactMissingError before the tool is
// touched. A non-zero tool exit returns the result together with a
// *domain.ToolFailedError. Failing to read the receipt is not an error: the
// deployment already happened, so the failure is kept in ReceiptErr.
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	cfg := uc.config.Deploy

	// Stage 1: precondition
	if err := uc.artifacts.CheckArtifact(ctx, cfg.ArtifactPath); err != nil {
		return nil, err
	}

	// Stage 2: assemble and echo
	cmd := uc.builder.BuildDeployCommand(cfg)
	result := &DeployContractResult{
		Config:  cfg,
		Command: cmd,
		DryRun:  params.DryRun,
	}
	uc.reporter.ReportCommand(cmd)

	if params.DryRun {
		uc.log.Debug("dry run, tool not invoked", "binary", cmd.Binary)
		return result, nil
	}

	if cfg.IsMainnet() && !params.AssumeYes && !uc.config.NonInteractive {
		ok, err := uc.confirmer.ConfirmDeploy(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			return nil, domain.ErrDeployAborted
		}
	}

	// Stage 3: invoke
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "deploy",
		Message: fmt.Sprintf("Waiting for %s to submit the deployment...", cmd.Binary),
		Spinner: true,
	})
	invocation, err := uc.runner.Run(ctx, cmd)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "deploy"})
	if err != nil {
		return nil, fmt.Errorf("failed to run %s: %w", cmd.Binary, err)
	}
	result.Invocation = invocation
	uc.reporter.ReportOutput(invocation.Output)

	if !invocation.Succeeded() {
		return result, &domain.ToolFailedError{Binary: cmd.Binary, Code: invocation.ExitCode}
	}

	// Stage 4: receipt
	receipt, err := uc.receipts.ReadReceipt(ctx, cfg.OutFilePath())
	if err != nil {
		uc.log.Debug("receipt not readable", "path", cfg.OutFilePath(), "error", err)
		result.ReceiptErr = err
		return result, nil
	}
	result.Receipt = receipt

	return result, nil
}
