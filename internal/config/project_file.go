package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
)

// DeployFile represents the deploy.toml structure
type DeployFile struct {
	Deploy DeploySection `toml:"deploy"`
}

// DeploySection holds per-project overrides for the deployment settings
type DeploySection struct {
	Network  string `toml:"network,omitempty"`
	Pem      string `toml:"pem,omitempty"`
	Proxy    string `toml:"proxy,omitempty"`
	Chain    string `toml:"chain,omitempty"`
	GasLimit int64  `toml:"gas_limit,omitempty"`
	OutFile  string `toml:"outfile,omitempty"`
	MxpyBin  string `toml:"mxpy_bin,omitempty"`
}

// loadDeployFile loads deploy.toml if it exists and returns the values it sets.
// Returns (nil, nil) when deploy.toml does not exist.
func loadDeployFile(projectRoot string) (map[string]any, error) {
	path := filepath.Join(projectRoot, config.ProjectFile)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var file DeployFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", config.ProjectFile, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in %s: %v", config.ProjectFile, undecoded)
	}

	d := file.Deploy
	values := make(map[string]any)
	setString := func(key, value string) {
		if value = os.ExpandEnv(value); value != "" {
			values[key] = value
		}
	}
	setString(config.KeyNetwork, d.Network)
	setString(config.KeyPem, d.Pem)
	setString(config.KeyProxy, d.Proxy)
	setString(config.KeyChain, d.Chain)
	setString(config.KeyOutFile, d.OutFile)
	setString(config.KeyToolBinary, d.MxpyBin)
	if meta.IsDefined("deploy", "gas_limit") {
		values[config.KeyGasLimit] = d.GasLimit
	}

	return values, nil
}
