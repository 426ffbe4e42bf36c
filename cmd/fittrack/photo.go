// ABOUTME: CLI commands for progress photos.
// ABOUTME: Photos are stored as references (path or URL), never encoded here.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	photoLabel string
	photoLimit int
)

var photoCmd = &cobra.Command{
	Use:   "photo",
	Short: "Record and list progress photos",
	Long: `Keep a timeline of progress photo references.

The tracker stores a path or URL per photo plus an optional label; it
never reads or encodes the image itself.

EXAMPLES:

  fittrack photo add ~/Pictures/front-2025-01.jpg --label "Cut week 4"
  fittrack photo list`,
}

var photoAddCmd = &cobra.Command{
	Use:   "add <image-ref>",
	Short: "Record a progress photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.NewProgressPhoto(args[0], photoLabel)
		appState.AddPhoto(p)
		saveState()

		color.Green("✓ Added photo")
		fmt.Printf("  ID: %s\n", shortID(p.ID))
		return nil
	},
}

var photoListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List progress photos",
	RunE: func(cmd *cobra.Command, args []string) error {
		photos := appState.Photos
		if photoLimit > 0 && len(photos) > photoLimit {
			photos = photos[:photoLimit]
		}
		if len(photos) == 0 {
			fmt.Println("No photos found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range photos {
			label := ""
			if p.Label != "" {
				label = faint.Sprintf(" (%s)", p.Label)
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprint(shortID(p.ID)),
				faint.Sprint(p.Date.Format("2006-01-02")),
				p.ImageURL,
				label)
		}
		return nil
	},
}

func init() {
	photoAddCmd.Flags().StringVar(&photoLabel, "label", "", "optional label")
	photoListCmd.Flags().IntVarP(&photoLimit, "limit", "n", 20, "max results")

	photoCmd.AddCommand(photoAddCmd)
	photoCmd.AddCommand(photoListCmd)
	rootCmd.AddCommand(photoCmd)
}
