// ABOUTME: CLI commands for analytics: weekly volume, PRs, top lifts, trend.
// ABOUTME: All derivations recompute from history on every invocation.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/analytics"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Training analytics",
	Long: `Derived analytics over your committed workout history.

COMMANDS:

  week     Trailing-7-day volume by muscle group
  prs      Personal records (best completed set per exercise)
  top      Top 3 heaviest lifts
  volume   Per-workout total volume trend, oldest first

Only completed sets count toward weekly volume and records. Volume is
always weight × reps, in kg.`,
}

var statsWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Weekly volume by muscle group",
	RunE: func(cmd *cobra.Command, args []string) error {
		volumes := analytics.WeeklyVolume(appState.Workouts, resolvedCatalog(), time.Now())
		if len(volumes) == 0 {
			fmt.Println("No training volume in the last 7 days.")
			return nil
		}

		var max float64
		for _, gv := range volumes {
			if gv.Volume > max {
				max = gv.Volume
			}
		}
		for _, gv := range volumes {
			bar := strings.Repeat("█", barWidth(gv.Volume, max, 30))
			fmt.Printf("%s %s %.0f kg\n", padRight(string(gv.Group), 9), bar, gv.Volume)
		}
		return nil
	},
}

var statsPRsCmd = &cobra.Command{
	Use:   "prs",
	Short: "Personal records per exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		records := analytics.TopLifts(appState.Workouts, resolvedCatalog(), 0)
		if len(records) == 0 {
			fmt.Println("No personal records yet. Complete some weighted sets!")
			return nil
		}

		faint := color.New(color.Faint)
		for _, r := range records {
			fmt.Printf("%s %6.1f kg × %d %s\n",
				padRight(r.Name, 24),
				r.Weight,
				r.Reps,
				faint.Sprint(r.Date.Format("2006-01-02")))
		}
		return nil
	},
}

var statsTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Top 3 heaviest lifts",
	RunE: func(cmd *cobra.Command, args []string) error {
		lifts := analytics.TopLifts(appState.Workouts, resolvedCatalog(), 3)
		if len(lifts) == 0 {
			fmt.Println("No lifts recorded yet.")
			return nil
		}

		for i, r := range lifts {
			fmt.Printf("%d. %s %.1f kg\n", i+1, padRight(r.Name, 24), r.Weight)
		}
		return nil
	},
}

var statsVolumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Per-workout volume trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		points := analytics.VolumeSeries(appState.Workouts)
		if len(points) == 0 {
			fmt.Println("Track a few sessions to see your progress chart!")
			return nil
		}

		var max float64
		for _, p := range points {
			if p.Volume > max {
				max = p.Volume
			}
		}
		faint := color.New(color.Faint)
		for _, p := range points {
			bar := strings.Repeat("▇", barWidth(p.Volume, max, 30))
			fmt.Printf("%s %s %.0f kg\n", faint.Sprint(p.Date.Format("Jan 02")), bar, p.Volume)
		}
		return nil
	},
}

// barWidth scales a value to a bar length, keeping nonzero values visible.
func barWidth(v, max float64, width int) int {
	if max <= 0 || v <= 0 {
		return 0
	}
	n := int(v / max * float64(width))
	if n < 1 {
		n = 1
	}
	return n
}

func init() {
	statsCmd.AddCommand(statsWeekCmd)
	statsCmd.AddCommand(statsPRsCmd)
	statsCmd.AddCommand(statsTopCmd)
	statsCmd.AddCommand(statsVolumeCmd)
	rootCmd.AddCommand(statsCmd)
}
