package config

import (
	"fmt"
	"strings"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// NetworkResolver resolves network names to the built-in network table
type NetworkResolver struct {
	networks []config.Network
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver() *NetworkResolver {
	return &NetworkResolver{
		networks: config.KnownNetworks(),
	}
}

// Names returns the names of all known networks
func (r *NetworkResolver) Names() []string {
	return lo.Map(r.networks, func(n config.Network, _ int) string {
		return n.Name
	})
}

// Resolve resolves a network name to its configuration
func (r *NetworkResolver) Resolve(name string) (*config.Network, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = config.DefaultNetworkName
	}
	for i := range r.networks {
		if strings.EqualFold(r.networks[i].Name, name) {
			n := r.networks[i]
			return &n, nil
		}
	}

	names := r.Names()
	if matches := fuzzy.Find(strings.ToLower(name), names); len(matches) > 0 {
		return nil, fmt.Errorf("unknown network %q, did you mean %q?", name, matches[0].Str)
	}
	return nil, fmt.Errorf("unknown network %q (known networks: %s)", name, strings.Join(names, ", "))
}
