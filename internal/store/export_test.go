// ABOUTME: Tests for the export snapshot format and default filename.
// ABOUTME: Exports carry workouts, measurements, a date, and the app name.
package store

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/fittrack/internal/models"
)

func TestNewExportSnapshot(t *testing.T) {
	state := populatedState()
	export := NewExport(state)

	if len(export.Workouts) != 1 || len(export.Measurements) != 1 {
		t.Fatalf("export missed data: %d workouts, %d measurements",
			len(export.Workouts), len(export.Measurements))
	}
	if export.App != "FitTrack Pro" {
		t.Errorf("App = %q, want FitTrack Pro", export.App)
	}
	if export.ExportDate.IsZero() {
		t.Error("ExportDate not stamped")
	}
}

func TestExportJSONShape(t *testing.T) {
	data, err := NewExport(populatedState()).JSON()
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	for _, key := range []string{"workouts", "measurements", "export_date", "app"} {
		if _, ok := got[key]; !ok {
			t.Errorf("export missing %q key", key)
		}
	}
}

func TestExportYAMLShape(t *testing.T) {
	data, err := NewExport(populatedState()).YAML()
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]interface{}
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("export is not valid YAML: %v", err)
	}
	if got["app"] != "FitTrack Pro" {
		t.Errorf("app = %v, want FitTrack Pro", got["app"])
	}
	if _, ok := got["workouts"]; !ok {
		t.Error("export missing workouts key")
	}
}

func TestExportEmptyState(t *testing.T) {
	data, err := NewExport(models.NewAppState()).JSON()
	if err != nil {
		t.Fatal(err)
	}
	var got ExportData
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Workouts) != 0 {
		t.Errorf("empty state exported %d workouts", len(got.Workouts))
	}
}

func TestDefaultExportFilename(t *testing.T) {
	got := DefaultExportFilename("json")
	want := "training-backup-" + time.Now().Format("2006-01-02") + ".json"
	if got != want {
		t.Errorf("filename = %q, want %q", got, want)
	}
	if !strings.HasSuffix(DefaultExportFilename("yaml"), ".yaml") {
		t.Error("yaml filename should carry .yaml extension")
	}
}
