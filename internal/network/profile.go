package network

import (
	"context"
	"fmt"
	"math/big"
	"net"
	"strconv"

	"github.com/Mohsinsiddi/w3deploy/internal/provider"
	"github.com/Mohsinsiddi/w3deploy/internal/wallet"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// Profile is a network definition bound to credentials. Remote profiles carry
// a provider factory; the local development profile talks to Host:Port.
type Profile struct {
	Definition

	// Provider is nil for local networks.
	Provider *provider.Factory

	local *provider.Factory
}

// EndpointURL interpolates the project id into the network's hosted RPC URL.
// An empty project id is not rejected; it yields a URL the node will refuse.
func EndpointURL(name, projectID string) string {
	return fmt.Sprintf("https://%s.infura.io/v3/%s", name, projectID)
}

// Build binds def to credentials. No provider is constructed here.
func Build(def Definition, projectID string, creds wallet.Credentials, dial provider.DialFunc) *Profile {
	p := &Profile{Definition: def}
	if def.Remote {
		p.Provider = provider.NewFactory(EndpointURL(def.Name, projectID), creds, dial)
	} else {
		p.local = provider.NewFactory(p.Endpoint(), nil, dial)
	}
	return p
}

// Endpoint returns the RPC URL for the profile.
func (p *Profile) Endpoint() string {
	if p.Provider != nil {
		return p.Provider.Endpoint()
	}
	return "http://" + net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
}

// Connect returns the profile's provider, constructing it on first use.
// The development provider is read-only: the local node holds the accounts.
func (p *Profile) Connect(ctx context.Context) (*provider.Provider, error) {
	if p.Provider != nil {
		return p.Provider.Get(ctx)
	}
	return p.local.Get(ctx)
}

// Close releases any provider the profile has built.
func (p *Profile) Close() {
	if p.Provider != nil {
		p.Provider.Close()
	}
	if p.local != nil {
		p.local.Close()
	}
}

// GasPriceWei returns the configured gas price.
func (p *Profile) GasPriceWei() *big.Int {
	return new(big.Int).SetUint64(p.GasPrice)
}

// EffectiveConfirmations is the number of blocks to wait between deployments.
func (p *Profile) EffectiveConfirmations() int {
	if p.Confirmations <= 0 {
		return DefaultConfirmations
	}
	return p.Confirmations
}

// EffectiveTimeoutBlocks is how many blocks a deployment may take before it
// is considered timed out.
func (p *Profile) EffectiveTimeoutBlocks() int {
	if p.TimeoutBlocks < DefaultTimeoutBlocks {
		return DefaultTimeoutBlocks
	}
	return p.TimeoutBlocks
}

// DryRun reports whether migrations should be simulated first. Only public
// networks dry-run, and only when not skipped.
func (p *Profile) DryRun() bool {
	return p.Remote && !p.SkipDryRun
}

// TransactOpts connects and returns signing options carrying the profile's
// gas limit and gas price.
func (p *Profile) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	prov, err := p.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	opts, err := prov.TransactOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	opts.GasLimit = p.Gas
	opts.GasPrice = p.GasPriceWei()
	return opts, nil
}
