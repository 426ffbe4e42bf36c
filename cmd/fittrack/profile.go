// ABOUTME: CLI commands for the athlete profile and display theme.
// ABOUTME: Profile edits replace the whole value; there is no partial patch.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	profileHeight float64
	profileTarget float64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the athlete profile",
	Long: `Show or edit your profile: height and target weight.

Running without flags prints the current profile. Passing either flag
updates it; unspecified fields keep their current value.

EXAMPLES:

  fittrack profile
  fittrack profile --height 180 --target-weight 78`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("height") && !flags.Changed("target-weight") {
			fmt.Printf("Height:        %.0f cm\n", appState.Profile.Height)
			fmt.Printf("Target weight: %.1f kg\n", appState.Profile.TargetWeight)
			if w := appState.LatestWeight(); w > 0 {
				fmt.Printf("Current weight: %.1f kg\n", w)
			}
			return nil
		}

		profile := appState.Profile
		if flags.Changed("height") {
			profile.Height = profileHeight
		}
		if flags.Changed("target-weight") {
			profile.TargetWeight = profileTarget
		}
		appState.Profile = profile
		saveState()

		color.Green("✓ Profile updated: %.0f cm, target %.1f kg", profile.Height, profile.TargetWeight)
		return nil
	},
}

var themeCmd = &cobra.Command{
	Use:       "theme <dark|light>",
	Short:     "Set the display theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"dark", "light"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "dark":
			appState.Theme = models.ThemeDark
		case "light":
			appState.Theme = models.ThemeLight
		default:
			return fmt.Errorf("unknown theme: %s (use dark or light)", args[0])
		}
		saveState()
		color.Green("✓ Theme set to %s", args[0])
		return nil
	},
}

func init() {
	profileCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileCmd.Flags().Float64Var(&profileTarget, "target-weight", 0, "target weight in kg")

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(themeCmd)
}
