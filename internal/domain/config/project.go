package config

import "path/filepath"

// Project layout, relative to the project root
const (
	// ArtifactRelPath is where the contract build writes the bytecode
	ArtifactRelPath = "contract/output/public-commitment-fund.wasm"
	// ProjectMarker identifies the project root when walking up from the working directory
	ProjectMarker = "contract/Cargo.toml"
	// BuildCommand produces ArtifactRelPath
	BuildCommand = "cd contract/meta && cargo run -- build"

	DefaultPemFile         = "wallet.pem"
	DefaultOutFile         = "deploy.json"
	DefaultGasLimit uint64 = 80000000

	// ProjectFile holds optional per-project overrides
	ProjectFile = "deploy.toml"
)

// ArtifactPath returns the absolute bytecode path for a project root
func ArtifactPath(projectRoot string) string {
	return filepath.Join(projectRoot, filepath.FromSlash(ArtifactRelPath))
}
