package wallet

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/99designs/keyring"
)

const (
	keychainService = "w3deploy"

	// DefaultSecretRef is the keychain entry holding the deployment secret.
	DefaultSecretRef = keychainService + ".secret_key"

	// KeyringPasswordEnv unlocks the file backend without a terminal prompt.
	KeyringPasswordEnv = "W3DEPLOY_KEYRING_PASSWORD"
)

// ErrSecretNotFound is returned when no secret is stored under a reference.
var ErrSecretNotFound = errors.New("secret not found")

// KeystoreBackend is the storage used by KeyringCredentials.
type KeystoreBackend interface {
	Store(ref, secret string) error
	Retrieve(ref string) (string, error)
	Delete(ref string) error
}

// Keystore wraps OS keychain access.
type Keystore struct {
	ring keyring.Keyring
}

// NewKeystore wraps an already opened keyring.
func NewKeystore(ring keyring.Keyring) *Keystore {
	return &Keystore{ring: ring}
}

// OpenKeystore opens the OS keychain. fileDir is used by the file backend,
// which is the fallback on headless Linux.
func OpenKeystore(fileDir string) (*Keystore, error) {
	cfg := keyring.Config{
		ServiceName:              keychainService,
		KeychainTrustApplication: true,
		FileDir:                  fileDir,
		FilePasswordFunc:         filePassword(),
	}

	// On Linux without a GUI, fall back to file-based storage.
	if runtime.GOOS == "linux" {
		cfg.AllowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		ring, err = keyring.Open(keyring.Config{
			ServiceName:      keychainService,
			AllowedBackends:  []keyring.BackendType{keyring.FileBackend},
			FileDir:          fileDir,
			FilePasswordFunc: filePassword(),
		})
		if err != nil {
			return nil, fmt.Errorf("opening keychain: %w", err)
		}
	}
	return &Keystore{ring: ring}, nil
}

// Store saves a secret under ref.
func (k *Keystore) Store(ref, secret string) error {
	err := k.ring.Set(keyring.Item{
		Key:   ref,
		Data:  []byte(secret),
		Label: "w3deploy deployment secret",
	})
	if err != nil {
		return fmt.Errorf("keychain store: %w", err)
	}
	return nil
}

// Retrieve fetches the secret stored under ref.
func (k *Keystore) Retrieve(ref string) (string, error) {
	item, err := k.ring.Get(ref)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, ref)
	}
	if err != nil {
		return "", fmt.Errorf("keychain retrieve: %w", err)
	}
	return string(item.Data), nil
}

// Delete removes a stored secret.
func (k *Keystore) Delete(ref string) error {
	if err := k.ring.Remove(ref); err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrSecretNotFound, ref)
		}
		return fmt.Errorf("keychain remove: %w", err)
	}
	return nil
}

func filePassword() keyring.PromptFunc {
	if pw := os.Getenv(KeyringPasswordEnv); pw != "" {
		return keyring.FixedStringPrompt(pw)
	}
	return keyring.TerminalPrompt
}

// InMemoryKeystore keeps secrets in memory (for tests).
type InMemoryKeystore struct {
	data map[string]string
}

// NewInMemoryKeystore creates an in-memory keystore.
func NewInMemoryKeystore() *InMemoryKeystore {
	return &InMemoryKeystore{data: make(map[string]string)}
}

func (k *InMemoryKeystore) Store(ref, secret string) error {
	k.data[ref] = secret
	return nil
}

func (k *InMemoryKeystore) Retrieve(ref string) (string, error) {
	v, ok := k.data[ref]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, ref)
	}
	return v, nil
}

func (k *InMemoryKeystore) Delete(ref string) error {
	if _, ok := k.data[ref]; !ok {
		return fmt.Errorf("%w: %s", ErrSecretNotFound, ref)
	}
	delete(k.data, ref)
	return nil
}
