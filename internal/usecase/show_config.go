package usecase

import (
	"context"
	"strconv"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
)

// ConfigEntry is a single resolved setting
type ConfigEntry struct {
	Key    string        `yaml:"key"`
	Value  string        `yaml:"value"`
	Source config.Source `yaml:"source"`
	EnvVar string        `yaml:"env,omitempty"` // set when Source is env
}

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	ProjectRoot string
	Entries     []ConfigEntry
	Network     *config.Network
}

// ShowConfig is a use case for showing the resolved deployment configuration
type ShowConfig struct {
	config *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		config: cfg,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	d := uc.config.Deploy

	// The preset, not the network the chain id maps to
	networkName := uc.config.NetworkName
	if networkName == "" && d.Network != nil {
		networkName = d.Network.Name
	}

	values := []struct {
		key   string
		value string
	}{
		{config.KeyNetwork, networkName},
		{config.KeyArtifact, d.ArtifactPath},
		{config.KeyPem, d.PemFile},
		{config.KeyProxy, d.Proxy},
		{config.KeyChain, d.ChainID},
		{config.KeyGasLimit, strconv.FormatUint(d.GasLimit, 10)},
		{config.KeyOutFile, d.OutFile},
		{config.KeyToolBinary, d.ToolBinary},
	}

	entries := make([]ConfigEntry, 0, len(values))
	for _, v := range values {
		source, ok := uc.config.Sources[v.key]
		if !ok {
			source = config.SourceDefault
		}
		entry := ConfigEntry{Key: v.key, Value: v.value, Source: source}
		if source == config.SourceEnv {
			entry.EnvVar = config.EnvVar(v.key)
		}
		entries = append(entries, entry)
	}

	return &ShowConfigResult{
		ProjectRoot: uc.config.ProjectRoot,
		Entries:     entries,
		Network:     d.Network,
	}, nil
}
