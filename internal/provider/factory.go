package provider

import (
	"context"
	"sync"

	"github.com/Mohsinsiddi/w3deploy/internal/wallet"
)

// DialFunc constructs a provider. Dial is the default.
type DialFunc func(ctx context.Context, endpoint string, creds wallet.Credentials) (*Provider, error)

// Factory is a deferred provider constructor. Nothing is built until the
// first Get; a successful result is cached and returned to every later
// caller. Construction errors are passed through unchanged and not cached.
type Factory struct {
	endpoint string
	creds    wallet.Credentials
	dial     DialFunc

	mu       sync.Mutex
	provider *Provider
}

// NewFactory returns a factory for endpoint. A nil dial uses Dial.
func NewFactory(endpoint string, creds wallet.Credentials, dial DialFunc) *Factory {
	if dial == nil {
		dial = Dial
	}
	return &Factory{endpoint: endpoint, creds: creds, dial: dial}
}

// Endpoint returns the URL the factory will connect to.
func (f *Factory) Endpoint() string { return f.endpoint }

// Get builds the provider on first use.
func (f *Factory) Get(ctx context.Context) (*Provider, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.provider != nil {
		return f.provider, nil
	}
	p, err := f.dial(ctx, f.endpoint, f.creds)
	if err != nil {
		return nil, err
	}
	f.provider = p
	return p, nil
}

// Built reports whether a provider has been constructed.
func (f *Factory) Built() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.provider != nil
}

// Close releases the cached provider, if any. A later Get builds a new one.
func (f *Factory) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.provider != nil && f.provider.client != nil {
		f.provider.Close()
	}
	f.provider = nil
}
