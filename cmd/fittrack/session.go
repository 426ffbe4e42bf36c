// ABOUTME: CLI commands for the active workout session.
// ABOUTME: Start, add exercises, edit sets, run the rest timer, finish.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/catalog"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/spf13/cobra"
)

var (
	sessionPast   bool
	setReps       int
	setWeight     float64
	setRest       int
	setNotes      string
	setType       string
	setDone       bool
	setUndone     bool
	setRunTimer   bool
	sessionNotes  string
	sessionEnergy int
	sessionSleep  int
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"s"},
	Short:   "Manage the active workout session",
	Long: `Track a workout session set by set.

Exactly one session can be active at a time. Exercises and sets are
addressed by their 1-based position, shown by 'session status'.

WORKFLOW:

  1. Start:               fittrack session start
  2. Add an exercise:     fittrack session add b1
  3. Log sets:            fittrack session set 1 1 --weight 140 --reps 3 --done
  4. Repeat a set:        fittrack session add-set 1
  5. Commit to history:   fittrack session finish

Marking a set --done starts the rest countdown for that set's configured
rest time (skip with --timer=false). Only completed sets survive
'finish'; exercises with no completed sets are dropped.`,
}

var sessionStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a new session",
	Long: `Start a new workout session.

Use --past to label it as a retroactively logged session instead of a
live one; the two differ only in name. Starting while a session is
already active replaces it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine.Active() != nil {
			color.Yellow("⚠ Replacing in-progress session %q", engine.Active().Name)
		}

		mode := session.ModeLive
		if sessionPast {
			mode = session.ModeLogged
		}
		w := engine.Start(mode)
		saveState()

		color.Green("✓ Started %q", w.Name)
		fmt.Printf("  ID: %s\n", w.ID[:8])
		fmt.Println("  Add exercises with 'fittrack session add <exercise-id>'")
		return nil
	},
}

var sessionStatusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"show"},
	Short:   "Show the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := engine.Active()
		if w == nil {
			fmt.Println("No active session. Start one with 'fittrack session start'.")
			return nil
		}

		resolved := resolvedCatalog()
		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", w.Name, faint.Sprintf("(%s, started %s)", w.ID[:8], w.Date.Format("2006-01-02 15:04")))
		if len(w.Exercises) == 0 {
			fmt.Println("  No exercises yet.")
			return nil
		}

		for i, pe := range w.Exercises {
			fmt.Printf("\n  %d. %s\n", i+1, catalog.DisplayName(resolved, pe.ExerciseID))
			for j, s := range pe.Sets {
				mark := " "
				if s.Completed {
					mark = color.GreenString("✓")
				}
				fmt.Printf("     %s %d) %3d reps × %6.1f kg  %s rest %ds %s\n",
					mark, j+1, s.Reps, s.Weight, faint.Sprintf("[%s]", setTypeShort(s.Type)), s.RestTime,
					faint.Sprint(s.Notes))
			}
		}
		return nil
	},
}

var sessionAddCmd = &cobra.Command{
	Use:   "add <exercise-id>",
	Short: "Add an exercise to the session",
	Long: `Add an exercise to the active session with one default set
(10 reps, 0 kg, 60 s rest, Working, not completed).

Find exercise IDs with 'fittrack exercises'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine.Active() == nil {
			return fmt.Errorf("no active session; start one with 'fittrack session start'")
		}

		resolved := resolvedCatalog()
		name := catalog.DisplayName(resolved, args[0])
		if name == catalog.UnknownName {
			color.Yellow("⚠ %q is not in the catalog; it will display as %q", args[0], catalog.UnknownName)
		}

		engine.AddExercise(args[0])
		saveState()

		color.Green("✓ Added %s", name)
		fmt.Printf("  Exercise #%d, one default set\n", len(engine.Active().Exercises))
		return nil
	},
}

var sessionSetCmd = &cobra.Command{
	Use:   "set <exercise#> <set#>",
	Short: "Update a set",
	Long: `Update the addressed set in the active session.

Examples:
  fittrack session set 1 1 --weight 140 --reps 3
  fittrack session set 1 1 --done                 # complete it, start rest timer
  fittrack session set 1 2 --type Warmup --timer=false --done
  fittrack session set 2 1 --undone               # un-complete it`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := engine.Active()
		if w == nil {
			return fmt.Errorf("no active session; start one with 'fittrack session start'")
		}

		exIdx, setIdx, err := parseIndices(args[0], args[1], w)
		if err != nil {
			return err
		}

		patch := models.SetPatch{}
		flags := cmd.Flags()
		if flags.Changed("reps") {
			patch.Reps = &setReps
		}
		if flags.Changed("weight") {
			patch.Weight = &setWeight
		}
		if flags.Changed("rest") {
			patch.RestTime = &setRest
		}
		if flags.Changed("notes") {
			patch.Notes = &setNotes
		}
		if flags.Changed("type") {
			if !models.IsValidSetType(setType) {
				return fmt.Errorf("unknown set type: %s (use Warmup, Working, 'Drop Set', or 'To Failure')", setType)
			}
			st := models.SetType(setType)
			patch.Type = &st
		}
		if setDone && setUndone {
			return fmt.Errorf("--done and --undone are mutually exclusive")
		}
		if setDone || setUndone {
			completed := setDone
			patch.Completed = &completed
		}

		effects := engine.UpdateSet(exIdx, setIdx, patch)
		saveState()

		s := w.Exercises[exIdx].Sets[setIdx]
		color.Green("✓ Set %s/%s: %d reps × %.1f kg", args[0], args[1], s.Reps, s.Weight)

		for _, eff := range effects {
			if rt, ok := eff.(session.StartRestTimer); ok && setRunTimer {
				runRestTimer(rt.Seconds)
			}
		}
		return nil
	},
}

var sessionAddSetCmd = &cobra.Command{
	Use:   "add-set <exercise#>",
	Short: "Append a set copying the last one",
	Long: `Append a new set to the addressed exercise, copying the weight,
reps, rest time, type, and notes of its current last set. The copy gets
a fresh ID and starts not completed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := engine.Active()
		if w == nil {
			return fmt.Errorf("no active session; start one with 'fittrack session start'")
		}
		exIdx, err := parseExerciseIndex(args[0], w)
		if err != nil {
			return err
		}

		engine.AddSet(exIdx)
		saveState()

		color.Green("✓ Added set %d to exercise %s", len(w.Exercises[exIdx].Sets), args[0])
		return nil
	},
}

var sessionCloneSetCmd = &cobra.Command{
	Use:   "clone-set <exercise#> <set#>",
	Short: "Insert a copy of a set right after it",
	Long: `Insert an exact copy of the addressed set immediately after it,
with a fresh ID and completed cleared. Useful for drop-set variants
mid-sequence rather than only at the end.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := engine.Active()
		if w == nil {
			return fmt.Errorf("no active session; start one with 'fittrack session start'")
		}
		exIdx, setIdx, err := parseIndices(args[0], args[1], w)
		if err != nil {
			return err
		}

		engine.CloneSet(exIdx, setIdx)
		saveState()

		color.Green("✓ Cloned set %s/%s", args[0], args[1])
		return nil
	},
}

var sessionDropCmd = &cobra.Command{
	Use:   "drop <exercise#>",
	Short: "Remove an exercise from the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := engine.Active()
		if w == nil {
			return fmt.Errorf("no active session; start one with 'fittrack session start'")
		}
		exIdx, err := parseExerciseIndex(args[0], w)
		if err != nil {
			return err
		}

		name := catalog.DisplayName(resolvedCatalog(), w.Exercises[exIdx].ExerciseID)
		engine.RemoveExercise(exIdx)
		saveState()

		color.Green("✓ Removed %s", name)
		return nil
	},
}

var sessionRenameCmd = &cobra.Command{
	Use:   "rename <name>",
	Short: "Rename the active session",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine.Active() == nil {
			return fmt.Errorf("no active session; start one with 'fittrack session start'")
		}
		name := joinArgs(args)
		engine.Rename(name)
		saveState()
		color.Green("✓ Renamed session to %q", name)
		return nil
	},
}

var sessionDateCmd = &cobra.Command{
	Use:   "date <YYYY-MM-DD [HH:MM]>",
	Short: "Reschedule the active session",
	Long: `Set the active session's date, for retroactive logging.

Examples:
  fittrack session date 2025-01-15
  fittrack session date 2025-01-15 18:30`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine.Active() == nil {
			return fmt.Errorf("no active session; start one with 'fittrack session start'")
		}

		t, err := parseWhen(args)
		if err != nil {
			return err
		}
		engine.Reschedule(t)
		saveState()
		color.Green("✓ Session dated %s", t.Format("2006-01-02 15:04"))
		return nil
	},
}

var sessionFinishCmd = &cobra.Command{
	Use:     "finish",
	Aliases: []string{"done"},
	Short:   "Finish the session and commit it to history",
	Long: `Finish the active session.

Each exercise keeps only its completed sets; exercises without any are
dropped. If nothing was completed the session is discarded without
touching history. The active slot clears either way.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine.Active() == nil {
			return fmt.Errorf("no active session")
		}

		if cmd.Flags().Changed("notes") {
			engine.Active().Notes = sessionNotes
		}
		if sessionEnergy > 0 {
			engine.Active().EnergyLevel = sessionEnergy
		}
		if sessionSleep > 0 {
			engine.Active().SleepQuality = sessionSleep
		}

		committed := engine.Finish()
		saveState()

		if committed == nil {
			color.Yellow("Session discarded: no completed sets.")
			return nil
		}

		color.Green("✓ Committed %q", committed.Name)
		fmt.Printf("  %d exercises, %.0f kg total volume\n", len(committed.Exercises), committed.Volume())
		return nil
	},
}

var sessionDiscardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Abandon the session without committing",
	RunE: func(cmd *cobra.Command, args []string) error {
		if engine.Active() == nil {
			return fmt.Errorf("no active session")
		}
		engine.Discard()
		saveState()
		color.Green("✓ Session discarded")
		return nil
	},
}

// runRestTimer blocks on an inline rest countdown, dismissible with Ctrl-C.
func runRestTimer(seconds int) {
	if seconds <= 0 {
		return
	}

	timer := session.NewRestTimer(seconds)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	fmt.Printf("  Rest: %s", session.FormatClock(seconds))
	for {
		select {
		case remaining, ok := <-timer.Ticks:
			if !ok {
				fmt.Printf("\r  Rest: done    \n")
				return
			}
			fmt.Printf("\r  Rest: %s ", session.FormatClock(remaining))
		case <-sigChan:
			timer.Stop()
			<-timer.Done
			fmt.Printf("\r  Rest: dismissed\n")
			return
		}
	}
}

func setTypeShort(t models.SetType) string {
	switch t {
	case models.SetWarmup:
		return "W"
	case models.SetDrop:
		return "D"
	case models.SetFailure:
		return "F"
	default:
		return "S"
	}
}

func parseWhen(args []string) (time.Time, error) {
	raw := args[0]
	layout := "2006-01-02"
	if len(args) == 2 {
		raw = args[0] + " " + args[1]
		layout = "2006-01-02 15:04"
	}
	t, err := time.ParseInLocation(layout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD [HH:MM])", raw)
	}
	return t, nil
}

func init() {
	sessionStartCmd.Flags().BoolVar(&sessionPast, "past", false, "log a past session instead of live tracking")

	sessionSetCmd.Flags().IntVar(&setReps, "reps", 0, "repetition count")
	sessionSetCmd.Flags().Float64Var(&setWeight, "weight", 0, "weight in kg")
	sessionSetCmd.Flags().IntVar(&setRest, "rest", 0, "rest duration in seconds")
	sessionSetCmd.Flags().StringVar(&setNotes, "notes", "", "free-text note")
	sessionSetCmd.Flags().StringVar(&setType, "type", "", "set type (Warmup, Working, 'Drop Set', 'To Failure')")
	sessionSetCmd.Flags().BoolVar(&setDone, "done", false, "mark the set completed")
	sessionSetCmd.Flags().BoolVar(&setUndone, "undone", false, "mark the set not completed")
	sessionSetCmd.Flags().BoolVar(&setRunTimer, "timer", true, "run the rest countdown when completing a set")

	sessionFinishCmd.Flags().StringVar(&sessionNotes, "notes", "", "session notes")
	sessionFinishCmd.Flags().IntVar(&sessionEnergy, "energy", 0, "energy rating 1-10")
	sessionFinishCmd.Flags().IntVar(&sessionSleep, "sleep", 0, "sleep quality rating 1-10")

	sessionCmd.AddCommand(sessionStartCmd)
	sessionCmd.AddCommand(sessionStatusCmd)
	sessionCmd.AddCommand(sessionAddCmd)
	sessionCmd.AddCommand(sessionSetCmd)
	sessionCmd.AddCommand(sessionAddSetCmd)
	sessionCmd.AddCommand(sessionCloneSetCmd)
	sessionCmd.AddCommand(sessionDropCmd)
	sessionCmd.AddCommand(sessionRenameCmd)
	sessionCmd.AddCommand(sessionDateCmd)
	sessionCmd.AddCommand(sessionFinishCmd)
	sessionCmd.AddCommand(sessionDiscardCmd)
	rootCmd.AddCommand(sessionCmd)
}
