// ABOUTME: Charm KV-backed gateway with automatic cloud sync.
// ABOUTME: Data is E2E encrypted with the user's SSH key via Charm Cloud.
package store

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/kv"
	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/models"
)

const (
	charmDBName = "fittrack"
	charmHost   = "charm.2389.dev"
)

// CharmStore persists the state in Charm KV and syncs it to Charm Cloud
// after every write. When another process holds the database lock the
// store opens read-only; writes then fail with an explanatory error.
type CharmStore struct {
	kv *kv.KV
	mu sync.Mutex
}

// OpenCharm opens the Charm KV database, pulling remote data first.
func OpenCharm() (*CharmStore, error) {
	// Set server before opening KV
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(charmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	if !db.IsReadOnly() {
		_ = db.Sync()
	}

	return &CharmStore{kv: db}, nil
}

// Load reads the stored state, or returns (nil, nil) when empty.
func (c *CharmStore) Load() (*models.AppState, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.kv.Get([]byte(stateKey))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	return unmarshalState(data)
}

// Save writes the full state and syncs to Charm Cloud.
func (c *CharmStore) Save(s *models.AppState) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}

	data, err := marshalState(s)
	if err != nil {
		return err
	}
	if err := c.kv.Set([]byte(stateKey), data); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	_ = c.kv.Sync()
	return nil
}

// Close closes the KV database connection.
func (c *CharmStore) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (c *CharmStore) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Reset()
}
