// Package credential resolves the TeamForge password, either from
// configuration or from the operating system keyring.
package credential

import (
	"errors"
	"fmt"

	"github.com/99designs/keyring"

	"github.com/jsamuelsen11/teamforge-tracker/internal/platform/config"
)

// ErrNotFound is returned when the keyring holds no item for the configured key.
var ErrNotFound = errors.New("credential not found")

// Store reads a single secret from a keyring.
type Store struct {
	ring keyring.Keyring
	key  string
}

// NewStore wraps an already opened keyring.
func NewStore(ring keyring.Keyring, key string) *Store {
	return &Store{ring: ring, key: key}
}

// Open opens the system keyring described by cfg.
func Open(cfg config.KeyringConfig) (*Store, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: cfg.Service,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  fileDir(cfg),
		FilePasswordFunc:         keyring.FixedStringPrompt(cfg.Service + "-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return NewStore(ring, cfg.Key), nil
}

func fileDir(cfg config.KeyringConfig) string {
	if cfg.FileDir != "" {
		return cfg.FileDir
	}
	return "~/.config/" + cfg.Service + "/credentials"
}

// Get returns the stored secret.
func (s *Store) Get() (string, error) {
	item, err := s.ring.Get(s.key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", fmt.Errorf("getting credential %q: %w", s.key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", s.key, err)
	}
	return string(item.Data), nil
}

// Password returns the TeamForge password: from the keyring when enabled,
// otherwise the configured plain value.
func Password(cfg config.TeamForgeConfig) (string, error) {
	if !cfg.Keyring.Enabled {
		return cfg.Password, nil
	}

	store, err := Open(cfg.Keyring)
	if err != nil {
		return "", err
	}
	return store.Get()
}
