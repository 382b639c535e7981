package provider

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Mohsinsiddi/w3deploy/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDial wraps Dial and counts how often it runs.
func countingDial(n *atomic.Int32) DialFunc {
	return func(ctx context.Context, endpoint string, creds wallet.Credentials) (*Provider, error) {
		n.Add(1)
		return Dial(ctx, endpoint, creds)
	}
}

func TestFactoryIsLazy(t *testing.T) {
	var n atomic.Int32
	f := NewFactory("http://127.0.0.1:19996", wallet.NewSecretCredentials(testMnemonic), countingDial(&n))

	assert.False(t, f.Built())
	assert.Equal(t, int32(0), n.Load())
	assert.Equal(t, "http://127.0.0.1:19996", f.Endpoint())
}

func TestFactoryBuildsOnce(t *testing.T) {
	var n atomic.Int32
	f := NewFactory("http://127.0.0.1:19996", wallet.NewSecretCredentials(testMnemonic), countingDial(&n))
	defer f.Close()

	p1, err := f.Get(context.Background())
	require.NoError(t, err)
	p2, err := f.Get(context.Background())
	require.NoError(t, err)

	assert.Same(t, p1, p2)
	assert.True(t, f.Built())
	assert.Equal(t, int32(1), n.Load())
}

func TestFactoryConcurrentGet(t *testing.T) {
	var n atomic.Int32
	f := NewFactory("http://127.0.0.1:19996", nil, countingDial(&n))
	defer f.Close()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.Get(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), n.Load())
}

func TestFactoryErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	f := NewFactory("http://x", nil, func(context.Context, string, wallet.Credentials) (*Provider, error) {
		calls++
		return nil, boom
	})

	_, err := f.Get(context.Background())
	assert.Equal(t, boom, err)
	assert.False(t, f.Built())

	// Not cached: the next Get tries again.
	_, err = f.Get(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}

func TestFactoryMissingSecretSurfacesOnGet(t *testing.T) {
	f := NewFactory("https://ropsten.infura.io/v3/", wallet.NewSecretCredentials(""), nil)

	_, err := f.Get(context.Background())
	assert.ErrorIs(t, err, wallet.ErrEmptySecret)
}

func TestFactoryCloseResets(t *testing.T) {
	var n atomic.Int32
	f := NewFactory("http://127.0.0.1:19996", nil, countingDial(&n))

	_, err := f.Get(context.Background())
	require.NoError(t, err)
	f.Close()
	assert.False(t, f.Built())

	_, err = f.Get(context.Background())
	require.NoError(t, err)
	f.Close()
	assert.Equal(t, int32(2), n.Load())
}
