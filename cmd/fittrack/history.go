// ABOUTME: CLI commands for browsing committed workout history.
// ABOUTME: Day-grouped listing, per-workout detail, delete, and calendar view.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/analytics"
	"github.com/harperreed/fittrack/internal/catalog"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "Browse committed workouts",
	Long: `Browse your workout history, newest first, grouped by day.

COMMANDS:

  history             Day-grouped listing
  history show <id>   Full detail for one workout (8-char ID prefix works)
  history delete <id> Remove a workout from history
  history calendar    Month grid of training days

EXAMPLES:

  fittrack history
  fittrack history show 3f2a
  fittrack history calendar 2025-01`,
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts := appState.Workouts
		if historyLimit > 0 && len(workouts) > historyLimit {
			workouts = workouts[:historyLimit]
		}
		if len(workouts) == 0 {
			fmt.Println("No workouts yet. Finish a session to build history.")
			return nil
		}

		faint := color.New(color.Faint)
		today := time.Now().Format("2006-01-02")
		for _, group := range analytics.GroupByDay(workouts) {
			day := group.Day.Format("2006-01-02")
			header := group.Day.Format("Mon Jan 2")
			if day == today {
				header = "Today"
			}
			fmt.Printf("\n%s\n", color.New(color.Bold).Sprint(header))
			for _, w := range group.Workouts {
				fmt.Printf("  %s %s %s  %d exercises, %.0f kg\n",
					faint.Sprint(shortID(w.ID)),
					faint.Sprint(w.Date.Format("15:04")),
					padRight(w.Name, 16),
					len(w.Exercises),
					w.Volume())
			}
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show workout details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := findWorkoutByPrefix(args[0])
		if err != nil {
			return err
		}

		resolved := resolvedCatalog()
		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n", w.Name, faint.Sprintf("(%s)", shortID(w.ID)))
		fmt.Printf("Date: %s\n", w.Date.Format("2006-01-02 15:04"))
		if w.Notes != "" {
			fmt.Printf("Notes: %s\n", w.Notes)
		}
		if w.EnergyLevel > 0 {
			fmt.Printf("Energy: %d/10\n", w.EnergyLevel)
		}
		if w.SleepQuality > 0 {
			fmt.Printf("Sleep: %d/10\n", w.SleepQuality)
		}

		for _, pe := range w.Exercises {
			fmt.Printf("\n  %s\n", catalog.DisplayName(resolved, pe.ExerciseID))
			for j, s := range pe.Sets {
				notes := ""
				if s.Notes != "" {
					notes = faint.Sprintf(" (%s)", truncate(s.Notes, 30))
				}
				fmt.Printf("    %d) %3d reps × %6.1f kg %s%s\n",
					j+1, s.Reps, s.Weight, faint.Sprintf("[%s]", setTypeShort(s.Type)), notes)
			}
		}
		fmt.Printf("\nTotal volume: %.0f kg\n", w.Volume())
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a workout from history",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := findWorkoutByPrefix(args[0])
		if err != nil {
			return err
		}
		appState.DeleteWorkout(w.ID)
		saveState()

		color.Green("✓ Deleted %q (%s)", w.Name, shortID(w.ID))
		return nil
	},
}

var historyCalendarCmd = &cobra.Command{
	Use:   "calendar [YYYY-MM]",
	Short: "Show a month grid of training days",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		year, month := now.Year(), now.Month()
		if len(args) == 1 {
			parts := strings.SplitN(args[0], "-", 2)
			if len(parts) != 2 {
				return fmt.Errorf("invalid month %q (use YYYY-MM)", args[0])
			}
			y, err1 := strconv.Atoi(parts[0])
			m, err2 := strconv.Atoi(parts[1])
			if err1 != nil || err2 != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month %q (use YYYY-MM)", args[0])
			}
			year, month = y, time.Month(m)
		}

		trained := analytics.WorkoutDates(appState.Workouts, year, month)

		fmt.Printf("%s %d\n", month, year)
		fmt.Println("Su Mo Tu We Th Fr Sa")

		first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		offset := int(first.Weekday())
		daysInMonth := first.AddDate(0, 1, -1).Day()

		line := strings.Repeat("   ", offset)
		for day := 1; day <= daysInMonth; day++ {
			cell := fmt.Sprintf("%2d", day)
			if trained[day] {
				cell = color.GreenString("%2d", day)
			}
			line += cell + " "
			if (offset+day)%7 == 0 {
				fmt.Println(strings.TrimRight(line, " "))
				line = ""
			}
		}
		if line != "" {
			fmt.Println(strings.TrimRight(line, " "))
		}
		fmt.Printf("\n%d training day(s)\n", len(trained))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "max workouts (default all)")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyCalendarCmd)
	rootCmd.AddCommand(historyCmd)
}
