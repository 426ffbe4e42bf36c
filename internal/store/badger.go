// ABOUTME: Badger-backed gateway, the default local store.
// ABOUTME: Keeps the serialized AppState under a single key.
package store

import (
	"errors"
	"fmt"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fittrack/internal/models"
)

// BadgerStore persists the state in a local Badger database.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens or creates the Badger database under dataDir.
func OpenBadger(dataDir string) (*BadgerStore, error) {
	if err := ensureDir(dataDir); err != nil {
		return nil, err
	}
	opts := badger.DefaultOptions(filepath.Join(dataDir, "fittrack.badger")).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Load reads the stored state, or returns (nil, nil) when empty.
func (b *BadgerStore) Load() (*models.AppState, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(stateKey))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	return unmarshalState(data)
}

// Save writes the full state.
func (b *BadgerStore) Save(s *models.AppState) error {
	data, err := marshalState(s)
	if err != nil {
		return err
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(stateKey), data)
	})
	if err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (b *BadgerStore) Close() error {
	return b.db.Close()
}
