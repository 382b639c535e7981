package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCompilersCommand(t *testing.T) {
	withSecrets(t, "abc", testPrivKeyHex)
	out, _, err := runCmd(t, "", "compilers")
	require.NoError(t, err)
	assert.Equal(t, "solc 0.5.12\n", out)
}

func TestExportJSON(t *testing.T) {
	withSecrets(t, "abc123", testPrivKeyHex)
	out, _, err := runCmd(t, "", "export")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Contains(t, doc, "networks")
	require.Contains(t, doc, "compilers")
	assert.Contains(t, out, "https://mainnet.infura.io/v3/abc123")
	assert.NotContains(t, out, testPrivKeyHex)
}

func TestExportYAMLToFile(t *testing.T) {
	withSecrets(t, "abc123", testPrivKeyHex)
	path := filepath.Join(t.TempDir(), "deploy.yaml")

	out, _, err := runCmd(t, "", "export", "--format", "yaml", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Networks map[string]map[string]any `yaml:"networks"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Len(t, doc.Networks, 4)
	assert.Equal(t, "*", doc.Networks["development"]["network_id"])
}

func TestExportBadFormat(t *testing.T) {
	withSecrets(t, "abc123", testPrivKeyHex)
	_, _, err := runCmd(t, "", "export", "--format", "toml")
	assert.Error(t, err)
}
