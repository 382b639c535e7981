package network

import (
	"fmt"
	"strconv"
	"strings"
)

// NetworkID identifies the chain a profile deploys to. The zero value is the
// wildcard "*", which accepts whatever chain the node reports.
type NetworkID struct {
	id uint64
}

// AnyNetwork matches every chain id.
var AnyNetwork = NetworkID{}

// ID returns a concrete network id.
func ID(id uint64) NetworkID { return NetworkID{id: id} }

// IsAny reports whether n is the wildcard.
func (n NetworkID) IsAny() bool { return n.id == 0 }

// Uint64 returns the chain id, or 0 for the wildcard.
func (n NetworkID) Uint64() uint64 { return n.id }

// Matches reports whether a node on chainID satisfies n.
func (n NetworkID) Matches(chainID uint64) bool {
	return n.IsAny() || n.id == chainID
}

func (n NetworkID) String() string {
	if n.IsAny() {
		return "*"
	}
	return strconv.FormatUint(n.id, 10)
}

// MarshalJSON writes "*" for the wildcard and a number otherwise.
func (n NetworkID) MarshalJSON() ([]byte, error) {
	if n.IsAny() {
		return []byte(`"*"`), nil
	}
	return []byte(strconv.FormatUint(n.id, 10)), nil
}

// MarshalYAML mirrors MarshalJSON.
func (n NetworkID) MarshalYAML() (any, error) {
	if n.IsAny() {
		return "*", nil
	}
	return n.id, nil
}

// ParseNetworkID parses "*" or a decimal chain id.
func ParseNetworkID(s string) (NetworkID, error) {
	s = strings.TrimSpace(s)
	if s == "*" {
		return AnyNetwork, nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NetworkID{}, fmt.Errorf("network_id %q: %w", s, err)
	}
	return ID(id), nil
}
