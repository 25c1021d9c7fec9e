package usecase

import (
	"context"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
)

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents a known network and whether it is selected
type NetworkStatus struct {
	Network config.Network
	Active  bool
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	config *config.RuntimeConfig
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig) *ListNetworks {
	return &ListNetworks{
		config: cfg,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	networks := config.KnownNetworks()

	statuses := make([]NetworkStatus, 0, len(networks))
	for _, network := range networks {
		statuses = append(statuses, NetworkStatus{
			Network: network,
			Active:  network.ChainID == uc.config.Deploy.ChainID,
		})
	}

	return &ListNetworksResult{
		Networks: statuses,
	}, nil
}
