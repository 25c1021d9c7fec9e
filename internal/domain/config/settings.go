package config

// Setting keys as used in deploy.toml, viper and the config listing
const (
	KeyNetwork    = "network"
	KeyArtifact   = "artifact"
	KeyPem        = "pem"
	KeyProxy      = "proxy"
	KeyChain      = "chain"
	KeyGasLimit   = "gas_limit"
	KeyOutFile    = "outfile"
	KeyToolBinary = "mxpy_bin"
)

// Execution keys that are not deployment settings
const (
	KeyDebug          = "debug"
	KeyNonInteractive = "non_interactive"
)

// envVars maps setting keys to the environment variables that set them
var envVars = map[string]string{
	KeyNetwork:        "MVX_NETWORK",
	KeyPem:            "PEM_FILE",
	KeyProxy:          "MVX_PROXY",
	KeyChain:          "MVX_CHAIN_ID",
	KeyGasLimit:       "DEPLOY_GAS_LIMIT",
	KeyOutFile:        "DEPLOY_OUTFILE",
	KeyToolBinary:     "MXPY_BIN",
	KeyDebug:          "PCF_DEBUG",
	KeyNonInteractive: "PCF_NON_INTERACTIVE",
}

// EnvVar returns the environment variable bound to key, or "" when there is none
func EnvVar(key string) string {
	return envVars[key]
}

// EnvBindings returns a copy of the key to environment variable table
func EnvBindings() map[string]string {
	bindings := make(map[string]string, len(envVars))
	for key, env := range envVars {
		bindings[key] = env
	}
	return bindings
}

// SettingKeys returns the deployment setting keys in display order
func SettingKeys() []string {
	return []string{
		KeyNetwork,
		KeyArtifact,
		KeyPem,
		KeyProxy,
		KeyChain,
		KeyGasLimit,
		KeyOutFile,
		KeyToolBinary,
	}
}
