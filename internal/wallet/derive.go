package wallet

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/sha3"
)

// DefaultDerivationPath is the first account of the standard Ethereum BIP-44 tree.
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

// Errors.
var (
	ErrEmptySecret     = errors.New("secret key is empty")
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	ErrInvalidKey      = errors.New("invalid private key")
)

// PrivateKeyFromSecret turns a secret into a signing key. The secret is either
// a BIP-39 mnemonic (first account is derived) or a hex private key.
func PrivateKeyFromSecret(secret string) (*ecdsa.PrivateKey, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if isMnemonic(secret) {
		return keyFromMnemonic(secret, DefaultDerivationPath)
	}
	key, err := crypto.HexToECDSA(normaliseHexKey(secret))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return key, nil
}

// Fingerprint returns a short, non-reversible tag for a secret so that logs
// can tell secrets apart without printing them.
func Fingerprint(secret string) string {
	if secret == "" {
		return "none"
	}
	sum := sha3.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:4])
}

func keyFromMnemonic(mnemonic, path string) (*ecdsa.PrivateKey, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}

	w, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("opening hd wallet: %w", err)
	}
	dp, err := hdwallet.ParseDerivationPath(path)
	if err != nil {
		return nil, fmt.Errorf("parsing derivation path %s: %w", path, err)
	}
	acct, err := w.Derive(dp, false)
	if err != nil {
		return nil, fmt.Errorf("deriving %s: %w", path, err)
	}
	key, err := w.PrivateKey(acct)
	if err != nil {
		return nil, fmt.Errorf("exporting derived key: %w", err)
	}
	return key, nil
}

// isMnemonic reports whether the secret looks like a word list rather than hex.
func isMnemonic(s string) bool {
	return len(strings.Fields(s)) > 1
}

func normaliseHexKey(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}
	return s
}
