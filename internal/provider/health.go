package provider

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"
)

// ErrChainMismatch is returned when a node reports a chain id other than the
// one the network is configured for.
var ErrChainMismatch = errors.New("chain id mismatch")

const pingTimeout = 5 * time.Second

// Health is the result of probing a provider.
type Health struct {
	Endpoint    string
	Latency     time.Duration
	BlockNumber uint64
	ChainID     *big.Int
	Healthy     bool
}

// Ping measures round-trip latency with eth_blockNumber.
func (p *Provider) Ping(ctx context.Context) (latency time.Duration, blockNum uint64, err error) {
	start := time.Now()
	blockNum, err = p.client.BlockNumber(ctx)
	latency = time.Since(start)
	if err != nil {
		return latency, 0, fmt.Errorf("eth_blockNumber: %w", err)
	}
	return latency, blockNum, nil
}

// ChainMatcher decides whether a node's chain id is acceptable.
// network.NetworkID implements it.
type ChainMatcher interface {
	Matches(chainID uint64) bool
	String() string
}

// HealthCheck pings the provider and checks the node's chain id against want.
// A node is healthy if it answers within the ping timeout on an accepted chain.
func HealthCheck(ctx context.Context, p *Provider, want ChainMatcher) (Health, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	h := Health{Endpoint: p.Endpoint()}

	latency, blockNum, err := p.Ping(timeoutCtx)
	h.Latency = latency
	if err != nil {
		return h, err
	}
	h.BlockNumber = blockNum

	chainID, err := p.ChainID(timeoutCtx)
	if err != nil {
		return h, err
	}
	h.ChainID = chainID

	if !chainID.IsUint64() || !want.Matches(chainID.Uint64()) {
		return h, fmt.Errorf("%w: node reports %s, expected %s", ErrChainMismatch, chainID, want)
	}

	h.Healthy = true
	return h, nil
}
