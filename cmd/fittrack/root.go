// ABOUTME: Root Cobra command for fittrack CLI.
// ABOUTME: Opens the store and loads the app state via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/harperreed/fittrack/internal/store"
	"github.com/spf13/cobra"
)

var (
	gateway  store.Gateway
	appState *models.AppState
	engine   *session.Engine
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness tracker",
	Long: `FitTrack is a CLI tool for logging workouts and tracking progress.

WHAT IT TRACKS:

  Sessions       exercises, sets, reps, weight, rest times
  Library        21 builtin exercises plus your own custom entries
  Body           weight, body fat, chest/waist/arm/thigh girths
  Photos         progress photo references with labels
  Analytics      weekly muscle-group volume, personal records, volume trend

QUICK START:

  $ fittrack session start              # Begin a live session
  $ fittrack session add b1             # Add Deadlift (see 'fittrack exercises')
  $ fittrack session set 1 1 --weight 140 --reps 3 --done
  $ fittrack session finish             # Commit completed sets to history
  $ fittrack stats prs                  # See your personal records

SESSIONS:

  Only sets marked --done count toward history, records, and volume.
  Finishing a session with no completed sets discards it silently.

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants.

DATA STORAGE:

  State is stored locally (Badger by default) under ~/.local/share/fittrack.
  Set "backend": "sqlite" or "charm" in ~/.config/fittrack/config.json to
  switch; the charm backend syncs across devices via Charm Cloud.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that don't touch the store
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		gateway, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		appState, err = gateway.Load()
		if err != nil {
			return fmt.Errorf("failed to load state: %w", err)
		}
		if appState == nil {
			appState = models.NewAppState()
		}

		engine = session.NewEngine(appState)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if gateway != nil {
			return gateway.Close()
		}
		return nil
	},
}

// saveState persists the current state, reporting rather than failing:
// the in-memory mutation already happened and is never rolled back.
func saveState() {
	if err := gateway.Save(appState); err != nil {
		color.Yellow("⚠ Save failed: %v", err)
	}
}
