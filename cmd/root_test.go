package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mohsinsiddi/w3deploy/internal/provider"
	"github.com/Mohsinsiddi/w3deploy/internal/wallet"
	"github.com/stretchr/testify/require"
)

// Well-known Hardhat/Anvil test account #0. Never fund on mainnet.
const (
	testPrivKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testSignerAddr = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

// runCmd executes the root command with args and returns stdout and stderr.
// Package-level flag state is reset first so tests don't leak into each other.
func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	envFile = ""
	keySource = keySourceEnv
	keyRef = wallet.DefaultSecretRef
	verbose = false
	exportFormat = "json"
	exportOutput = ""
	keysFromEnv = false
	keysYes = false
	cfg = nil
	if f := rootCmd.PersistentFlags().Lookup("project-id"); f != nil {
		_ = f.Value.Set("")
		f.Changed = false
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "absent.env")}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// withSecrets sets the deployment environment for one test.
func withSecrets(t *testing.T, projectID, secret string) {
	t.Helper()
	t.Setenv("PROJECT_ID", projectID)
	t.Setenv("SECRET_KEY", secret)
}

// withKeystore replaces the OS keychain with an in-memory one.
func withKeystore(t *testing.T) *wallet.InMemoryKeystore {
	t.Helper()
	ks := wallet.NewInMemoryKeystore()
	prev := keystoreOpener
	keystoreOpener = func() (wallet.KeystoreBackend, error) { return ks, nil }
	t.Cleanup(func() { keystoreOpener = prev })
	return ks
}

// withNode routes every provider to a JSON-RPC stub reporting chainID.
func withNode(t *testing.T, chainID string) {
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
		results := map[string]string{
			"eth_chainId":     chainID,
			"eth_blockNumber": "0x10",
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

	prev := dialer
	dialer = func(ctx context.Context, _ string, creds wallet.Credentials) (*provider.Provider, error) {
		return provider.Dial(ctx, srv.URL, creds)
	}
	t.Cleanup(func() { dialer = prev })
}

func TestUnknownKeySource(t *testing.T) {
	withSecrets(t, "abc", testPrivKeyHex)
	_, _, err := runCmd(t, "", "--key-source", "vault", "compilers")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown --key-source")
}

func TestVerboseLogsDiagnostics(t *testing.T) {
	withSecrets(t, "abc123", testPrivKeyHex)
	_, stderr, err := runCmd(t, "", "-v", "compilers")
	require.NoError(t, err)
	require.Contains(t, stderr, "project_id=abc123")
	require.Contains(t, stderr, "configuration loaded")
	require.NotContains(t, stderr, testPrivKeyHex)
}

func TestProjectIDFlagOverridesEnvironment(t *testing.T) {
	withSecrets(t, "fromenv", testPrivKeyHex)
	out, _, err := runCmd(t, "", "--project-id", "fromflag", "export")
	require.NoError(t, err)
	require.Contains(t, out, "https://ropsten.infura.io/v3/fromflag")
	require.NotContains(t, out, "fromenv")
}

func TestProjectIDFromEnvironmentWithoutFlag(t *testing.T) {
	withSecrets(t, "fromenv", testPrivKeyHex)
	out, _, err := runCmd(t, "", "export")
	require.NoError(t, err)
	require.Contains(t, out, "https://ropsten.infura.io/v3/fromenv")
}
