package config

import (
	"path/filepath"
)

// Source identifies the configuration layer a resolved value came from
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceFile    Source = "deploy.toml"
	SourceNetwork Source = "network"
	SourceDefault Source = "default"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string

	// Execution settings
	Debug          bool
	NonInteractive bool

	// NetworkName is the selected network preset. Deploy.Network follows the
	// chain id instead, so the two differ when the chain id is overridden.
	NetworkName string

	// Resolved deployment settings
	Deploy DeployConfig

	// Sources records which layer produced each setting, keyed by setting key
	Sources map[string]Source
}

// DeployConfig is the immutable set of settings for one deployment.
// It is passed by value so callers cannot mutate the resolved configuration.
type DeployConfig struct {
	ProjectRoot  string
	ArtifactPath string
	PemFile      string
	Proxy        string
	ChainID      string
	GasLimit     uint64
	OutFile      string
	ToolBinary   string

	// Network is the known network matching ChainID, nil for custom chains
	Network *Network
}

// OutFilePath returns the output file path as seen from the project root.
// The external tool runs in the project root, so relative paths resolve there.
func (c DeployConfig) OutFilePath() string {
	return resolveFromRoot(c.ProjectRoot, c.OutFile)
}

// IsMainnet reports whether the deployment targets mainnet
func (c DeployConfig) IsMainnet() bool {
	return c.ChainID == MainnetChainID
}

func resolveFromRoot(root, path string) string {
	if path == "" || filepath.IsAbs(path) || root == "" {
		return path
	}
	return filepath.Join(root, path)
}
