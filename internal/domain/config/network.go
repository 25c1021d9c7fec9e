package config

import (
	"strings"
)

// Chain identifiers of the public MultiversX networks
const (
	DevnetChainID  = "D"
	TestnetChainID = "T"
	MainnetChainID = "1"
)

// Network represents network configuration
type Network struct {
	Name        string `json:"name" yaml:"name"`
	ChainID     string `json:"chainId" yaml:"chainId"`
	APIURL      string `json:"apiUrl" yaml:"apiUrl"`
	ExplorerURL string `json:"explorerUrl,omitempty" yaml:"explorerUrl,omitempty"`
}

var knownNetworks = []Network{
	{
		Name:        "devnet",
		ChainID:     DevnetChainID,
		APIURL:      "https://devnet-api.multiversx.com",
		ExplorerURL: "https://devnet-explorer.multiversx.com",
	},
	{
		Name:        "testnet",
		ChainID:     TestnetChainID,
		APIURL:      "https://testnet-api.multiversx.com",
		ExplorerURL: "https://testnet-explorer.multiversx.com",
	},
	{
		Name:        "mainnet",
		ChainID:     MainnetChainID,
		APIURL:      "https://api.multiversx.com",
		ExplorerURL: "https://explorer.multiversx.com",
	},
}

// DefaultNetworkName is used when no network is configured
const DefaultNetworkName = "devnet"

// KnownNetworks returns a copy of the built-in network table
func KnownNetworks() []Network {
	networks := make([]Network, len(knownNetworks))
	copy(networks, knownNetworks)
	return networks
}

// NetworkByName finds a known network by name, case-insensitively
func NetworkByName(name string) *Network {
	for i := range knownNetworks {
		if strings.EqualFold(knownNetworks[i].Name, name) {
			n := knownNetworks[i]
			return &n
		}
	}
	return nil
}

// NetworkByChainID finds a known network by chain identifier
func NetworkByChainID(chainID string) *Network {
	for i := range knownNetworks {
		if knownNetworks[i].ChainID == chainID {
			n := knownNetworks[i]
			return &n
		}
	}
	return nil
}

// TransactionURL returns the explorer page for a transaction hash
func (n *Network) TransactionURL(hash string) string {
	if n == nil || n.ExplorerURL == "" {
		return ""
	}
	return n.ExplorerURL + "/transactions/" + hash
}

// AccountURL returns the explorer page for an address
func (n *Network) AccountURL(address string) string {
	if n == nil || n.ExplorerURL == "" {
		return ""
	}
	return n.ExplorerURL + "/accounts/" + address
}
