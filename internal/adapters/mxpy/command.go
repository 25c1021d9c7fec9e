package mxpy

import (
	"strconv"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
	"github.com/samber/lo"
)

// DefaultBinary is the tool executable looked up on PATH
const DefaultBinary = "mxpy"

// CommandBuilderAdapter assembles `mxpy contract deploy` invocations
type CommandBuilderAdapter struct{}

// NewCommandBuilderAdapter creates a new command builder
func NewCommandBuilderAdapter() *CommandBuilderAdapter {
	return &CommandBuilderAdapter{}
}

// BuildDeployCommand builds the deploy invocation from the resolved config.
// Values are passed as separate argv entries and are never interpreted by a shell.
func (b *CommandBuilderAdapter) BuildDeployCommand(cfg config.DeployConfig) *domain.ToolCommand {
	return &domain.ToolCommand{
		Binary: lo.Ternary(cfg.ToolBinary != "", cfg.ToolBinary, DefaultBinary),
		Args:   buildDeployArgs(cfg),
		Dir:    cfg.ProjectRoot,
	}
}

// buildDeployArgs builds the mxpy contract deploy arguments
func buildDeployArgs(cfg config.DeployConfig) []string {
	return []string{
		"contract", "deploy",
		flag("bytecode", cfg.ArtifactPath),
		flag("pem", cfg.PemFile),
		flag("gas-limit", strconv.FormatUint(cfg.GasLimit, 10)),
		flag("proxy", cfg.Proxy),
		flag("chain", cfg.ChainID),
		"--send",
		flag("outfile", cfg.OutFile),
	}
}

func flag(name, value string) string {
	return "--" + name + "=" + value
}

// Ensure the adapter implements the interface
var _ usecase.DeployCommandBuilder = (*CommandBuilderAdapter)(nil)
