package wallet

import (
	"errors"
	"fmt"
)

// ErrNoSigner is returned when a provider has no credentials to sign with.
var ErrNoSigner = errors.New("no signer configured")

// Credentials produce a signer for an RPC endpoint. The secret behind the
// signer never leaves the implementation.
type Credentials interface {
	SignerFor(endpoint string) (*Signer, error)
}

// SecretCredentials derive the signer from a raw secret (mnemonic or hex key).
// The secret is not parsed until a signer is requested.
type SecretCredentials struct {
	secret string
}

// NewSecretCredentials wraps a raw secret.
func NewSecretCredentials(secret string) *SecretCredentials {
	return &SecretCredentials{secret: secret}
}

// SignerFor derives the signer. The same account is used for every endpoint.
func (c *SecretCredentials) SignerFor(endpoint string) (*Signer, error) {
	key, err := PrivateKeyFromSecret(c.secret)
	if err != nil {
		return nil, fmt.Errorf("deriving signer: %w", err)
	}
	return NewSigner(key), nil
}

// String never reveals the secret.
func (c *SecretCredentials) String() string {
	return "secret:" + Fingerprint(c.secret)
}

// KeyringCredentials read the secret from a keystore on every request.
type KeyringCredentials struct {
	ks  KeystoreBackend
	ref string
}

// NewKeyringCredentials reads the secret stored under ref.
func NewKeyringCredentials(ks KeystoreBackend, ref string) *KeyringCredentials {
	if ref == "" {
		ref = DefaultSecretRef
	}
	return &KeyringCredentials{ks: ks, ref: ref}
}

// SignerFor retrieves the secret and derives the signer.
func (c *KeyringCredentials) SignerFor(endpoint string) (*Signer, error) {
	secret, err := c.ks.Retrieve(c.ref)
	if err != nil {
		return nil, fmt.Errorf("retrieving secret %s: %w", c.ref, err)
	}
	key, err := PrivateKeyFromSecret(secret)
	if err != nil {
		return nil, fmt.Errorf("deriving signer: %w", err)
	}
	return NewSigner(key), nil
}

func (c *KeyringCredentials) String() string {
	return "keyring:" + c.ref
}
