package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mohsinsiddi/w3deploy/internal/wallet"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known Hardhat/Anvil test account #0. Never fund on mainnet.
const (
	testMnemonic   = "test test test test test test test test test test test junk"
	testSignerAddr = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

// rpcStub serves single JSON-RPC requests, answering each method from results.
// Unknown methods get a -32601 error.
func rpcStub(t *testing.T, results map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		res, ok := results[req.Method]
		if !ok {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"error":{"code":-32601,"message":"method not found"}}`, req.ID)
			return
		}
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%s,"result":%q}`, req.ID, res)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ---------------------------------------------------------------------------
// Dial
// ---------------------------------------------------------------------------

func TestDialWithCredentials(t *testing.T) {
	srv := rpcStub(t, nil)

	p, err := Dial(context.Background(), srv.URL, wallet.NewSecretCredentials(testMnemonic))
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, srv.URL, p.Endpoint())
	assert.Equal(t, common.HexToAddress(testSignerAddr), p.Address())
	assert.NotNil(t, p.Client())
}

func TestDialDoesNotContactNode(t *testing.T) {
	// Nothing listens here; HTTP dialing is local setup only.
	p, err := Dial(context.Background(), "http://127.0.0.1:19995", wallet.NewSecretCredentials(testMnemonic))
	require.NoError(t, err)
	p.Close()
}

func TestDialReadOnly(t *testing.T) {
	srv := rpcStub(t, nil)

	p, err := Dial(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	defer p.Close()

	_, err = p.Signer()
	assert.ErrorIs(t, err, wallet.ErrNoSigner)
	assert.Equal(t, common.Address{}, p.Address())
}

func TestDialEmptySecret(t *testing.T) {
	_, err := Dial(context.Background(), "https://ropsten.infura.io/v3/", wallet.NewSecretCredentials(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, wallet.ErrEmptySecret)
}

func TestDialUnsupportedScheme(t *testing.T) {
	_, err := Dial(context.Background(), "ftp://ropsten.infura.io/v3/abc", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dialing")
}

// ---------------------------------------------------------------------------
// ChainID / TransactOpts
// ---------------------------------------------------------------------------

func TestChainID(t *testing.T) {
	srv := rpcStub(t, map[string]string{"eth_chainId": "0x4"})
	p, err := Dial(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	defer p.Close()

	id, err := p.ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(4), id)
}

func TestTransactOpts(t *testing.T) {
	srv := rpcStub(t, map[string]string{"eth_chainId": "0x3"})
	p, err := Dial(context.Background(), srv.URL, wallet.NewSecretCredentials(testMnemonic))
	require.NoError(t, err)
	defer p.Close()

	ctx := context.Background()
	opts, err := p.TransactOpts(ctx)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testSignerAddr), opts.From)
	assert.Equal(t, ctx, opts.Context)
}

func TestTransactOptsReadOnly(t *testing.T) {
	srv := rpcStub(t, map[string]string{"eth_chainId": "0x3"})
	p, err := Dial(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	defer p.Close()

	_, err = p.TransactOpts(context.Background())
	assert.ErrorIs(t, err, wallet.ErrNoSigner)
}

func TestTransactOptsChainIDError(t *testing.T) {
	srv := rpcStub(t, nil)
	p, err := Dial(context.Background(), srv.URL, wallet.NewSecretCredentials(testMnemonic))
	require.NoError(t, err)
	defer p.Close()

	_, err = p.TransactOpts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "eth_chainId")
}
