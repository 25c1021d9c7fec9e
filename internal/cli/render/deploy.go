package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FrontendAddressVar is the frontend .env variable holding the contract address
const FrontendAddressVar = "NEXT_PUBLIC_CONTRACT_ADDRESS"

// DeployRenderer echoes the tool invocation and reports the deployment outcome
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{
		out: out,
	}
}

// ReportCommand echoes the command line before it runs
func (r *DeployRenderer) ReportCommand(cmd *domain.ToolCommand) {
	fmt.Fprintf(r.out, "$ %s\n", cmd.String())
}

// ReportOutput prints the captured tool output verbatim followed by a newline
func (r *DeployRenderer) ReportOutput(output []byte) {
	_, _ = r.out.Write(output)
	fmt.Fprintln(r.out)
}

// Render reports the receipt of a completed deployment
func (r *DeployRenderer) Render(result *usecase.DeployContractResult) error {
	if result.DryRun {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Dry run: %s was not invoked.", result.Command.Binary)))
		return nil
	}

	if result.ReceiptErr != nil {
		fmt.Fprintf(r.out, "Could not parse deploy output file: %v\n", result.ReceiptErr)
		return nil
	}

	receipt := result.Receipt
	if receipt == nil {
		receipt = &domain.DeployReceipt{}
	}
	fmt.Fprintf(r.out, "%s: %s\n", domain.ReceiptKeyTransactionHash, valueOrNone(receipt.TransactionHash))
	fmt.Fprintf(r.out, "%s: %s\n", domain.ReceiptKeyContractAddress, valueOrNone(receipt.ContractAddress))

	r.renderLinks(result.Config.Network, receipt)
	return nil
}

func (r *DeployRenderer) renderLinks(network *config.Network, receipt *domain.DeployReceipt) {
	if network == nil || (receipt.TransactionHash == nil && receipt.ContractAddress == nil) {
		return
	}

	fmt.Fprintln(r.out)
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "MultiversX %s\n", cases.Title(language.English).String(network.Name))
	if receipt.TransactionHash != nil {
		fmt.Fprintf(r.out, "  Transaction: %s\n", network.TransactionURL(*receipt.TransactionHash))
	}
	if receipt.ContractAddress != nil {
		fmt.Fprintf(r.out, "  Contract:    %s\n", network.AccountURL(*receipt.ContractAddress))
		fmt.Fprintln(r.out)
		color.New(color.FgHiBlack).Fprintln(r.out, "Add to frontend/.env.local:")
		fmt.Fprintf(r.out, "%s=%s\n", FrontendAddressVar, *receipt.ContractAddress)
	}
}

// RenderError prints the user-facing message for deployment failures.
// Returns false for errors it does not know how to present.
func (r *DeployRenderer) RenderError(err error) bool {
	var missing *domain.ArtifactMissingError
	var failed *domain.ToolFailedError

	switch {
	case errors.As(err, &missing):
		fmt.Fprintf(r.out, "Missing wasm file: %s\n", missing.Path)
		fmt.Fprintf(r.out, "Build first: %s\n", missing.BuildHint)
	case errors.As(err, &failed):
		fmt.Fprintln(r.out, "Deployment failed.")
	case errors.Is(err, domain.ErrDeployAborted):
		fmt.Fprintln(r.out, "Deployment aborted.")
	default:
		return false
	}
	return true
}

// Ensure the renderer implements the interfaces
var (
	_ usecase.DeployReporter                  = (*DeployRenderer)(nil)
	_ Renderer[*usecase.DeployContractResult] = (*DeployRenderer)(nil)
)
