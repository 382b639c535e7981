package network

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNetworkNotFound is returned when a network is not in the registry.
var ErrNetworkNotFound = errors.New("network not found")

// Tool defaults for optional profile fields.
const (
	DefaultConfirmations = 0
	DefaultTimeoutBlocks = 50 // also the minimum the deployer accepts
)

// Definition is the static description of a deployment network.
type Definition struct {
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	NetworkID   NetworkID `json:"network_id"`
	Remote      bool      `json:"remote"`

	// Local networks only.
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	Gas           uint64 `json:"gas,omitempty"` // 0 = let the deployer decide
	GasPrice      uint64 `json:"gas_price"`     // wei
	Confirmations int    `json:"confirmations,omitempty"`
	TimeoutBlocks int    `json:"timeout_blocks,omitempty"`
	SkipDryRun    bool   `json:"skip_dry_run,omitempty"`
}

// Registry is the network registry.
type Registry struct {
	defs   []Definition
	byName map[string]*Definition
	byID   map[NetworkID]*Definition
}

// NewRegistry returns the registry of all deployment networks.
func NewRegistry() *Registry {
	defs := allNetworks()
	r := &Registry{
		defs:   defs,
		byName: make(map[string]*Definition, len(defs)),
		byID:   make(map[NetworkID]*Definition, len(defs)),
	}
	for i := range r.defs {
		d := &r.defs[i]
		r.byName[d.Name] = d
		r.byID[d.NetworkID] = d
	}
	return r
}

// All returns every network in declaration order.
func (r *Registry) All() []Definition {
	return r.defs
}

// Names returns every network name in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.defs))
	for i, d := range r.defs {
		names[i] = d.Name
	}
	return names
}

// Lookup finds a network by name (case-insensitive).
func (r *Registry) Lookup(name string) (*Definition, error) {
	d, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrNetworkNotFound, name, strings.Join(r.Names(), ", "))
	}
	return d, nil
}

// GetByNetworkID finds the network configured with id. The wildcard finds
// the network that accepts any chain.
func (r *Registry) GetByNetworkID(id NetworkID) (*Definition, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: network_id %s", ErrNetworkNotFound, id)
	}
	return d, nil
}

// --- network data ---

func allNetworks() []Definition {
	return []Definition{
		// Local Ganache.
		{
			Name: "development", DisplayName: "Development", NetworkID: AnyNetwork,
			Host: "127.0.0.1", Port: 7545,
			GasPrice: 5_000_000_000,
		},
		// Ropsten has a lower block limit than mainnet.
		{
			Name: "ropsten", DisplayName: "Ropsten", NetworkID: ID(3), Remote: true,
			Gas: 5_500_000, GasPrice: 8_000_000_000,
			Confirmations: 2, TimeoutBlocks: 200, SkipDryRun: true,
		},
		{
			Name: "rinkeby", DisplayName: "Rinkeby", NetworkID: ID(4), Remote: true,
			Gas: 6_900_000, GasPrice: 7_000_000_000,
			Confirmations: 2, TimeoutBlocks: 200, SkipDryRun: true,
		},
		{
			Name: "mainnet", DisplayName: "Mainnet", NetworkID: ID(1), Remote: true,
			Gas: 6_900_000, GasPrice: 62_000_000_000,
			Confirmations: 2, SkipDryRun: true,
		},
	}
}
