// ABOUTME: Persistence gateway contract, serialization, and XDG data paths.
// ABOUTME: The whole AppState is the unit of persistence, stored as one blob.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/fittrack/internal/models"
)

// stateKey addresses the single AppState document in KV-shaped backends.
const stateKey = "state"

// Gateway is the durable store for the application state. Load returns
// (nil, nil) when nothing has been saved yet; callers substitute a fresh
// default state. Loaded states are normalized, so optional fields missing
// from older writes come back as their documented defaults.
type Gateway interface {
	Load() (*models.AppState, error)
	Save(*models.AppState) error
	Close() error
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fittrack")
}

func marshalState(s *models.AppState) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal state: %w", err)
	}
	return data, nil
}

func unmarshalState(data []byte) (*models.AppState, error) {
	var s models.AppState
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	s.Normalize()
	return &s, nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}
