// ABOUTME: CLI commands for body measurements.
// ABOUTME: Measurements are immutable once created, listed newest first.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	measureWeight  float64
	measureBodyFat float64
	measureChest   float64
	measureWaist   float64
	measureArms    float64
	measureThighs  float64
	measureLimit   int
)

var measureCmd = &cobra.Command{
	Use:     "measure",
	Aliases: []string{"m"},
	Short:   "Record and list body measurements",
	Long: `Track body metrics over time: weight, body fat, and girths.

All fields are optional; record whichever you measured. Entries are
immutable once created.

EXAMPLES:

  fittrack measure add --weight 82.5
  fittrack measure add --weight 82.1 --fat 18.5 --waist 84
  fittrack measure list`,
}

var measureAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a measurement",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := models.NewBodyMeasurement()
		flags := cmd.Flags()
		if flags.Changed("weight") {
			m.Weight = &measureWeight
		}
		if flags.Changed("fat") {
			m.BodyFat = &measureBodyFat
		}
		if flags.Changed("chest") {
			m.Chest = &measureChest
		}
		if flags.Changed("waist") {
			m.Waist = &measureWaist
		}
		if flags.Changed("arms") {
			m.Arms = &measureArms
		}
		if flags.Changed("thighs") {
			m.Thighs = &measureThighs
		}

		appState.AddMeasurement(m)
		saveState()

		color.Green("✓ Recorded measurement")
		fmt.Printf("  ID: %s\n", shortID(m.ID))
		if m.Weight != nil {
			fmt.Printf("  Weight: %.1f kg (target %.1f)\n", *m.Weight, appState.Profile.TargetWeight)
		}
		return nil
	},
}

var measureListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List measurements",
	RunE: func(cmd *cobra.Command, args []string) error {
		measurements := appState.Measurements
		if measureLimit > 0 && len(measurements) > measureLimit {
			measurements = measurements[:measureLimit]
		}
		if len(measurements) == 0 {
			fmt.Println("No measurements found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range measurements {
			line := fmt.Sprintf("%s %s ",
				faint.Sprint(shortID(m.ID)),
				faint.Sprint(m.Date.Format("2006-01-02 15:04")))
			line += formatMeasurement(m)
			fmt.Println(line)
		}
		return nil
	},
}

func formatMeasurement(m *models.BodyMeasurement) string {
	out := ""
	add := func(label string, v *float64, unit string) {
		if v != nil {
			out += fmt.Sprintf("%s %.1f%s  ", label, *v, unit)
		}
	}
	add("weight", m.Weight, "kg")
	add("fat", m.BodyFat, "%")
	add("chest", m.Chest, "cm")
	add("waist", m.Waist, "cm")
	add("arms", m.Arms, "cm")
	add("thighs", m.Thighs, "cm")
	if out == "" {
		return "(empty)"
	}
	return out
}

func init() {
	measureAddCmd.Flags().Float64Var(&measureWeight, "weight", 0, "body weight in kg")
	measureAddCmd.Flags().Float64Var(&measureBodyFat, "fat", 0, "body fat percentage")
	measureAddCmd.Flags().Float64Var(&measureChest, "chest", 0, "chest girth in cm")
	measureAddCmd.Flags().Float64Var(&measureWaist, "waist", 0, "waist girth in cm")
	measureAddCmd.Flags().Float64Var(&measureArms, "arms", 0, "arm girth in cm")
	measureAddCmd.Flags().Float64Var(&measureThighs, "thighs", 0, "thigh girth in cm")
	measureListCmd.Flags().IntVarP(&measureLimit, "limit", "n", 20, "max results")

	measureCmd.AddCommand(measureAddCmd)
	measureCmd.AddCommand(measureListCmd)
	rootCmd.AddCommand(measureCmd)
}
