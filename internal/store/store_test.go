// ABOUTME: Round-trip tests for the badger and sqlite gateways.
// ABOUTME: Both must return (nil, nil) when empty and normalize on load.
package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/fittrack/internal/models"
)

// gatewayFixtures opens each backend against a fresh temp directory.
func gatewayFixtures(t *testing.T) map[string]func(dir string) (Gateway, error) {
	t.Helper()
	return map[string]func(dir string) (Gateway, error){
		"badger": func(dir string) (Gateway, error) { return OpenBadger(dir) },
		"sqlite": func(dir string) (Gateway, error) { return OpenSQLite(dir) },
	}
}

func populatedState() *models.AppState {
	state := models.NewAppState()

	w := models.NewWorkout("Active Session")
	w.Date = time.Date(2026, 8, 27, 18, 30, 0, 0, time.UTC)
	w.Notes = "felt strong"
	w.EnergyLevel = 4
	w.SleepQuality = 3
	set := models.NewWorkoutSet()
	set.Weight = 140
	set.Reps = 3
	set.Completed = true
	w.Exercises = []models.PerformedExercise{{ExerciseID: "b1", Sets: []models.WorkoutSet{set}}}
	state.AddWorkout(w)

	weight := 78.5
	m := models.NewBodyMeasurement()
	m.Weight = &weight // other girths stay nil
	state.AddMeasurement(m)

	state.AddCustomExercise(models.Exercise{ID: "x1", Name: "Sled Push", Category: models.MuscleLegs})
	image := "bench.jpg"
	state.UpdateExercise("c1", models.ExercisePatch{Image: &image})

	state.Theme = models.ThemeLight
	state.Profile = models.UserProfile{Height: 182, TargetWeight: 80}
	return state
}

func TestGatewayLoadEmpty(t *testing.T) {
	for name, open := range gatewayFixtures(t) {
		t.Run(name, func(t *testing.T) {
			gw, err := open(t.TempDir())
			require.NoError(t, err)
			defer gw.Close()

			state, err := gw.Load()
			require.NoError(t, err)
			assert.Nil(t, state, "an empty store must load as nil, not a zero state")
		})
	}
}

func TestGatewayRoundTrip(t *testing.T) {
	for name, open := range gatewayFixtures(t) {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()

			gw, err := open(dir)
			require.NoError(t, err)
			saved := populatedState()
			require.NoError(t, gw.Save(saved))
			require.NoError(t, gw.Close())

			// Reopen to prove the bytes hit disk, not a cache.
			gw, err = open(dir)
			require.NoError(t, err)
			defer gw.Close()
			loaded, err := gw.Load()
			require.NoError(t, err)
			require.NotNil(t, loaded)

			require.Len(t, loaded.Workouts, 1)
			w := loaded.Workouts[0]
			assert.Equal(t, saved.Workouts[0].ID, w.ID)
			assert.True(t, w.Date.Equal(saved.Workouts[0].Date))
			assert.Equal(t, "felt strong", w.Notes)
			assert.Equal(t, 4, w.EnergyLevel)
			require.Len(t, w.Exercises, 1)
			require.Len(t, w.Exercises[0].Sets, 1)
			assert.Equal(t, 140.0, w.Exercises[0].Sets[0].Weight)
			assert.True(t, w.Exercises[0].Sets[0].Completed)

			require.Len(t, loaded.Measurements, 1)
			require.NotNil(t, loaded.Measurements[0].Weight)
			assert.Equal(t, 78.5, *loaded.Measurements[0].Weight)
			assert.Nil(t, loaded.Measurements[0].Chest, "unset girth must stay nil")

			require.Len(t, loaded.CustomExercises, 1)
			assert.True(t, loaded.CustomExercises[0].Custom)

			require.Contains(t, loaded.ExerciseOverrides, "c1")
			require.NotNil(t, loaded.ExerciseOverrides["c1"].Image)
			assert.Equal(t, "bench.jpg", *loaded.ExerciseOverrides["c1"].Image)

			assert.Equal(t, models.ThemeLight, loaded.Theme)
			assert.Equal(t, 182.0, loaded.Profile.Height)
		})
	}
}

func TestGatewaySaveOverwrites(t *testing.T) {
	for name, open := range gatewayFixtures(t) {
		t.Run(name, func(t *testing.T) {
			gw, err := open(t.TempDir())
			require.NoError(t, err)
			defer gw.Close()

			first := populatedState()
			require.NoError(t, gw.Save(first))

			second := models.NewAppState()
			require.NoError(t, gw.Save(second))

			loaded, err := gw.Load()
			require.NoError(t, err)
			require.NotNil(t, loaded)
			assert.Empty(t, loaded.Workouts, "save must replace, not append")
		})
	}
}

func TestGatewayNormalizesOldBlobs(t *testing.T) {
	// A blob written before theme/profile existed comes back with defaults.
	for name, open := range gatewayFixtures(t) {
		t.Run(name, func(t *testing.T) {
			gw, err := open(t.TempDir())
			require.NoError(t, err)
			defer gw.Close()

			minimal := &models.AppState{}
			require.NoError(t, gw.Save(minimal))

			loaded, err := gw.Load()
			require.NoError(t, err)
			require.NotNil(t, loaded)
			assert.Equal(t, models.ThemeDark, loaded.Theme)
			assert.Equal(t, models.DefaultProfile(), loaded.Profile)
			assert.NotNil(t, loaded.ExerciseOverrides)
		})
	}
}
