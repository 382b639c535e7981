package provider

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Mohsinsiddi/w3deploy/internal/wallet"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Provider is a connection handle to one network: an RPC client plus the
// signer that deployments on that network use.
type Provider struct {
	endpoint string
	client   *ethclient.Client
	signer   *wallet.Signer
}

// Dial builds a provider for endpoint. With nil creds the provider is
// read-only. Dialing an HTTP endpoint only sets up the client; no request is
// sent until the provider is used.
func Dial(ctx context.Context, endpoint string, creds wallet.Credentials) (*Provider, error) {
	var signer *wallet.Signer
	if creds != nil {
		s, err := creds.SignerFor(endpoint)
		if err != nil {
			return nil, err
		}
		signer = s
	}

	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", endpoint, err)
	}

	return &Provider{endpoint: endpoint, client: client, signer: signer}, nil
}

// Endpoint returns the RPC URL the provider talks to.
func (p *Provider) Endpoint() string { return p.endpoint }

// Client returns the underlying go-ethereum client.
func (p *Provider) Client() *ethclient.Client { return p.client }

// Signer returns the provider's signer, or ErrNoSigner for read-only providers.
func (p *Provider) Signer() (*wallet.Signer, error) {
	if p.signer == nil {
		return nil, wallet.ErrNoSigner
	}
	return p.signer, nil
}

// Address returns the signing account, or the zero address for read-only providers.
func (p *Provider) Address() common.Address {
	if p.signer == nil {
		return common.Address{}
	}
	return p.signer.Address()
}

// ChainID asks the node for its chain id.
func (p *Provider) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := p.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("eth_chainId: %w", err)
	}
	return id, nil
}

// TransactOpts returns signing options bound to the node's chain id.
func (p *Provider) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	signer, err := p.Signer()
	if err != nil {
		return nil, err
	}
	chainID, err := p.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	opts, err := signer.TransactOpts(chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

// Close releases the RPC client.
func (p *Provider) Close() {
	p.client.Close()
}
