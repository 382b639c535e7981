package config

import "github.com/Mohsinsiddi/w3deploy/internal/network"

// Compilers is the compiler section of the configuration.
type Compilers struct {
	Solc SolcDirective `json:"solc" yaml:"solc"`
}

// SolcDirective pins the solc release used to build contracts.
type SolcDirective struct {
	Version string `json:"version" yaml:"version"`
}

// Export is the configuration as handed to a deployment tool.
type Export struct {
	Networks  map[string]NetworkExport `json:"networks"  yaml:"networks"`
	Compilers Compilers                `json:"compilers" yaml:"compilers"`
}

// NetworkExport is one entry of Export.Networks. Local networks carry
// host/port; remote ones carry a provider instead.
type NetworkExport struct {
	Host          string            `json:"host,omitempty"          yaml:"host,omitempty"`
	Port          int               `json:"port,omitempty"          yaml:"port,omitempty"`
	Provider      *ProviderExport   `json:"provider,omitempty"      yaml:"provider,omitempty"`
	NetworkID     network.NetworkID `json:"network_id"              yaml:"network_id"`
	Gas           uint64            `json:"gas,omitempty"           yaml:"gas,omitempty"`
	GasPrice      uint64            `json:"gasPrice"                yaml:"gasPrice"`
	Confirmations int               `json:"confirmations,omitempty" yaml:"confirmations,omitempty"`
	TimeoutBlocks int               `json:"timeoutBlocks,omitempty" yaml:"timeoutBlocks,omitempty"`
	SkipDryRun    bool              `json:"skipDryRun,omitempty"    yaml:"skipDryRun,omitempty"`
}

// ProviderExport describes a provider factory without invoking it.
type ProviderExport struct {
	Type string `json:"type" yaml:"type"` // "hdwallet"
	URL  string `json:"url"  yaml:"url"`
}
