// ABOUTME: CLI commands for browsing and editing the exercise library.
// ABOUTME: Builtin edits are stored as overrides; the seed never mutates.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/harperreed/fittrack/internal/catalog"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseGroup      string
	exerciseSearch     string
	exerciseName       string
	exerciseEquipment  string
	exerciseDifficulty string
	exerciseType       string
	exerciseImage      string
	exerciseDemo       string
)

var exercisesCmd = &cobra.Command{
	Use:     "exercises",
	Aliases: []string{"ex"},
	Short:   "Browse and edit the exercise library",
	Long: `Browse the exercise library: 21 builtin exercises plus your own.

Every listing and lookup uses the resolved catalog: builtins first, your
custom exercises appended, and any stored edits applied on top. Editing
a builtin never changes the seed; the edit is kept as an override and
merged at read time.

EXAMPLES:

  fittrack exercises                       # Full catalog
  fittrack exercises --group Back          # One muscle group
  fittrack exercises --search curl         # Name search
  fittrack exercises show b1               # Details for Deadlift
  fittrack exercises add "Goblet Squat" Legs --equipment Kettlebell
  fittrack exercises edit c1 --image bench.jpg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var group models.MuscleGroup
		if exerciseGroup != "" {
			if !models.IsValidMuscleGroup(exerciseGroup) {
				return fmt.Errorf("unknown muscle group: %s", exerciseGroup)
			}
			group = models.MuscleGroup(exerciseGroup)
		}

		exercises := catalog.Filter(resolvedCatalog(), group, exerciseSearch)
		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, ex := range exercises {
			marker := " "
			if ex.Custom {
				marker = color.CyanString("+")
			}
			fmt.Printf("%s %s %s %s %s\n",
				marker,
				faint.Sprint(padRight(ex.ID, 4)),
				padRight(ex.Name, 24),
				padRight(string(ex.Category), 9),
				faint.Sprint(ex.Equipment))
		}
		return nil
	},
}

var exercisesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show exercise details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, ok := catalog.FindByID(resolvedCatalog(), args[0])
		if !ok {
			return fmt.Errorf("no exercise with id %s", args[0])
		}

		fmt.Printf("%s (%s)\n", ex.Name, ex.ID)
		fmt.Printf("Category:   %s\n", ex.Category)
		fmt.Printf("Difficulty: %s\n", ex.Difficulty)
		fmt.Printf("Equipment:  %s\n", ex.Equipment)
		if ex.Type != "" {
			fmt.Printf("Type:       %s\n", ex.Type)
		}
		if ex.DemoURL != "" {
			fmt.Printf("Demo:       %s\n", ex.DemoURL)
		}
		if ex.Image != "" {
			fmt.Printf("Image:      %s\n", ex.Image)
		}
		if ex.Custom {
			fmt.Println("Custom:     yes")
		}
		if _, overridden := appState.ExerciseOverrides[ex.ID]; overridden {
			fmt.Println("Edited:     yes (override applied)")
		}
		return nil
	},
}

var exercisesAddCmd = &cobra.Command{
	Use:   "add <name> <muscle-group>",
	Short: "Add a custom exercise",
	Long: `Add a custom exercise to the library.

Examples:
  fittrack exercises add "Goblet Squat" Legs --equipment Kettlebell
  fittrack exercises add "Box Jumps" Legs --difficulty Intermediate --type Bodyweight`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMuscleGroup(args[1]) {
			return fmt.Errorf("unknown muscle group: %s", args[1])
		}

		ex := models.Exercise{
			ID:         uuid.New().String(),
			Name:       args[0],
			Category:   models.MuscleGroup(args[1]),
			Difficulty: models.DifficultyBeginner,
			Equipment:  exerciseEquipment,
		}
		if exerciseDifficulty != "" {
			if !models.IsValidDifficulty(exerciseDifficulty) {
				return fmt.Errorf("unknown difficulty: %s", exerciseDifficulty)
			}
			ex.Difficulty = models.Difficulty(exerciseDifficulty)
		}
		if exerciseType != "" {
			if !models.IsValidExerciseType(exerciseType) {
				return fmt.Errorf("unknown exercise type: %s", exerciseType)
			}
			ex.Type = models.ExerciseType(exerciseType)
		}
		if exerciseImage != "" {
			ex.Image = exerciseImage
		}

		appState.AddCustomExercise(ex)
		saveState()

		color.Green("✓ Added %s", ex.Name)
		fmt.Printf("  ID: %s\n", shortID(ex.ID))
		return nil
	},
}

var exercisesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an exercise",
	Long: `Edit an exercise's fields.

Custom exercises are edited in place. Builtin exercises keep their seed
values; your edit is stored as an override and applied whenever the
catalog is read.

Examples:
  fittrack exercises edit c1 --image bench.jpg
  fittrack exercises edit b1 --equipment "Trap Bar"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := models.ExercisePatch{}
		flags := cmd.Flags()
		if flags.Changed("name") {
			patch.Name = &exerciseName
		}
		if flags.Changed("equipment") {
			patch.Equipment = &exerciseEquipment
		}
		if flags.Changed("difficulty") {
			if !models.IsValidDifficulty(exerciseDifficulty) {
				return fmt.Errorf("unknown difficulty: %s", exerciseDifficulty)
			}
			d := models.Difficulty(exerciseDifficulty)
			patch.Difficulty = &d
		}
		if flags.Changed("type") {
			if !models.IsValidExerciseType(exerciseType) {
				return fmt.Errorf("unknown exercise type: %s", exerciseType)
			}
			et := models.ExerciseType(exerciseType)
			patch.Type = &et
		}
		if flags.Changed("image") {
			patch.Image = &exerciseImage
		}
		if flags.Changed("demo") {
			patch.DemoURL = &exerciseDemo
		}
		if patch.IsZero() {
			return fmt.Errorf("nothing to change; pass at least one field flag")
		}

		if _, ok := catalog.FindByID(resolvedCatalog(), args[0]); !ok {
			return fmt.Errorf("no exercise with id %s", args[0])
		}

		appState.UpdateExercise(args[0], patch)
		saveState()

		ex, _ := catalog.FindByID(resolvedCatalog(), args[0])
		color.Green("✓ Updated %s", ex.Name)
		return nil
	},
}

func init() {
	exercisesCmd.Flags().StringVarP(&exerciseGroup, "group", "g", "", "filter by muscle group")
	exercisesCmd.Flags().StringVarP(&exerciseSearch, "search", "s", "", "name substring search")

	exercisesAddCmd.Flags().StringVar(&exerciseEquipment, "equipment", "", "equipment (free text)")
	exercisesAddCmd.Flags().StringVar(&exerciseDifficulty, "difficulty", "", "Beginner, Intermediate, or Advanced")
	exercisesAddCmd.Flags().StringVar(&exerciseType, "type", "", "Strength, Hypertrophy, Cardio, Bodyweight, or Flexibility")
	exercisesAddCmd.Flags().StringVar(&exerciseImage, "image", "", "image path or URL")

	exercisesEditCmd.Flags().StringVar(&exerciseName, "name", "", "display name")
	exercisesEditCmd.Flags().StringVar(&exerciseEquipment, "equipment", "", "equipment (free text)")
	exercisesEditCmd.Flags().StringVar(&exerciseDifficulty, "difficulty", "", "Beginner, Intermediate, or Advanced")
	exercisesEditCmd.Flags().StringVar(&exerciseType, "type", "", "Strength, Hypertrophy, Cardio, Bodyweight, or Flexibility")
	exercisesEditCmd.Flags().StringVar(&exerciseImage, "image", "", "image path or URL")
	exercisesEditCmd.Flags().StringVar(&exerciseDemo, "demo", "", "demo reference URL")

	exercisesCmd.AddCommand(exercisesShowCmd)
	exercisesCmd.AddCommand(exercisesAddCmd)
	exercisesCmd.AddCommand(exercisesEditCmd)
	rootCmd.AddCommand(exercisesCmd)
}
