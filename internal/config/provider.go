package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ProjectRootEnv overrides project root discovery
const ProjectRootEnv = "PCF_PROJECT_ROOT"

// Settings is the layered configuration of one run:
// flags over environment over deploy.toml over defaults.
type Settings struct {
	v           *viper.Viper
	flags       *pflag.FlagSet
	file        map[string]any
	projectRoot string
}

// NewSettings loads .env files and deploy.toml from the project root and
// binds environment variables and flags. flags may be nil.
func NewSettings(projectRoot string, flags *pflag.FlagSet) (*Settings, error) {
	loadEnvFiles(projectRoot)

	file, err := loadDeployFile(projectRoot)
	if err != nil {
		return nil, newError(err)
	}

	v := viper.New()
	for key, env := range config.EnvBindings() {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	// Set defaults
	v.SetDefault(config.KeyNetwork, config.DefaultNetworkName)
	v.SetDefault(config.KeyPem, filepath.Join(projectRoot, config.DefaultPemFile))
	v.SetDefault(config.KeyGasLimit, config.DefaultGasLimit)
	v.SetDefault(config.KeyOutFile, filepath.Join(projectRoot, config.DefaultOutFile))
	v.SetDefault(config.KeyToolBinary, "mxpy")
	v.SetDefault(config.KeyDebug, false)
	v.SetDefault(config.KeyNonInteractive, false)

	if len(file) > 0 {
		if err := v.MergeConfigMap(file); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", config.ProjectFile, err)
		}
	}

	if flags != nil {
		for key := range config.EnvBindings() {
			if f := flags.Lookup(flagName(key)); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", f.Name, err)
				}
			}
		}
	}

	return &Settings{
		v:           v,
		flags:       flags,
		file:        file,
		projectRoot: projectRoot,
	}, nil
}

// Source reports which layer provides the value for key
func (s *Settings) Source(key string) config.Source {
	if s.flags != nil {
		if f := s.flags.Lookup(flagName(key)); f != nil && f.Changed {
			return config.SourceFlag
		}
	}
	if env := config.EnvVar(key); env != "" {
		// viper ignores empty variables, so do we
		if val, ok := os.LookupEnv(env); ok && val != "" {
			return config.SourceEnv
		}
	}
	if _, ok := s.file[key]; ok {
		return config.SourceFile
	}
	return config.SourceDefault
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(s *Settings) (*config.RuntimeConfig, error) {
	v := s.v

	network, err := NewNetworkResolver().Resolve(v.GetString(config.KeyNetwork))
	if err != nil {
		return nil, newError(err)
	}

	sources := make(map[string]config.Source, len(config.SettingKeys()))
	for _, key := range config.SettingKeys() {
		sources[key] = s.Source(key)
	}

	// The network preset sits between deploy.toml and the defaults
	proxy := network.APIURL
	if v.IsSet(config.KeyProxy) {
		proxy = v.GetString(config.KeyProxy)
	} else {
		sources[config.KeyProxy] = config.SourceNetwork
	}
	chainID := network.ChainID
	if v.IsSet(config.KeyChain) {
		chainID = v.GetString(config.KeyChain)
	} else {
		sources[config.KeyChain] = config.SourceNetwork
	}

	gasLimit, err := parseGasLimit(v.GetString(config.KeyGasLimit))
	if err != nil {
		return nil, newError(err)
	}

	deploy := config.DeployConfig{
		ProjectRoot:  s.projectRoot,
		ArtifactPath: config.ArtifactPath(s.projectRoot),
		PemFile:      v.GetString(config.KeyPem),
		Proxy:        proxy,
		ChainID:      chainID,
		GasLimit:     gasLimit,
		OutFile:      v.GetString(config.KeyOutFile),
		ToolBinary:   v.GetString(config.KeyToolBinary),
		Network:      config.NetworkByChainID(chainID),
	}

	return &config.RuntimeConfig{
		ProjectRoot:    s.projectRoot,
		Debug:          v.GetBool(config.KeyDebug),
		NonInteractive: v.GetBool(config.KeyNonInteractive) || !isatty.IsTerminal(os.Stdin.Fd()),
		NetworkName:    network.Name,
		Deploy:         deploy,
		Sources:        sources,
	}, nil
}

// FindProjectRoot returns override when set, otherwise walks up from the
// current directory looking for contract/Cargo.toml. Falls back to the
// current directory when no ancestor has one.
func FindProjectRoot(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		marker := filepath.Join(dir, filepath.FromSlash(config.ProjectMarker))
		if _, err := os.Stat(marker); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

func parseGasLimit(raw string) (uint64, error) {
	gasLimit, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid gas limit %q: must be a positive integer", raw)
	}
	if gasLimit == 0 {
		return 0, fmt.Errorf("invalid gas limit %q: must be a positive integer", raw)
	}
	return gasLimit, nil
}

// flagName maps a setting key to its command-line flag
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
