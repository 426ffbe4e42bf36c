// ABOUTME: One-way export of workouts and measurements.
// ABOUTME: Supports JSON and YAML; there is no corresponding import path.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"gopkg.in/yaml.v3"
)

// appName labels export snapshots.
const appName = "FitTrack Pro"

// ExportData is the dump format offered to the user as a backup artifact.
type ExportData struct {
	Workouts     []*models.Workout         `json:"workouts" yaml:"workouts"`
	Measurements []*models.BodyMeasurement `json:"measurements" yaml:"measurements"`
	ExportDate   time.Time                 `json:"export_date" yaml:"export_date"`
	App          string                    `json:"app" yaml:"app"`
}

// NewExport snapshots the exportable slices of the state.
func NewExport(s *models.AppState) *ExportData {
	return &ExportData{
		Workouts:     s.Workouts,
		Measurements: s.Measurements,
		ExportDate:   time.Now(),
		App:          appName,
	}
}

// JSON renders the export as indented JSON.
func (e *ExportData) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// YAML renders the export as YAML.
func (e *ExportData) YAML() ([]byte, error) {
	data, err := yaml.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// DefaultExportFilename names the downloadable artifact with the current
// date, e.g. training-backup-2025-01-31.json.
func DefaultExportFilename(format string) string {
	return fmt.Sprintf("training-backup-%s.%s", time.Now().Format("2006-01-02"), format)
}
