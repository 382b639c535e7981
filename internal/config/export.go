package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const providerTypeHDWallet = "hdwallet"

// Export describes the configuration without constructing any provider.
func (c *Config) Export() Export {
	e := Export{
		Networks:  make(map[string]NetworkExport, len(c.profiles)),
		Compilers: c.Compilers,
	}
	for _, p := range c.profiles {
		ne := NetworkExport{
			NetworkID:     p.NetworkID,
			Gas:           p.Gas,
			GasPrice:      p.GasPrice,
			Confirmations: p.Confirmations,
			TimeoutBlocks: p.TimeoutBlocks,
			SkipDryRun:    p.SkipDryRun,
		}
		if p.Provider != nil {
			ne.Provider = &ProviderExport{Type: providerTypeHDWallet, URL: p.Provider.Endpoint()}
		} else {
			ne.Host = p.Host
			ne.Port = p.Port
		}
		e.Networks[p.Name] = ne
	}
	return e
}

// Marshal encodes the export as "json" or "yaml".
func (e Export) Marshal(format string) ([]byte, error) {
	switch format {
	case "", "json":
		return json.MarshalIndent(e, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(e)
	default:
		return nil, fmt.Errorf("unsupported export format %q (use json or yaml)", format)
	}
}
