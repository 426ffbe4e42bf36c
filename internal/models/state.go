// ABOUTME: AppState root aggregate, the unit of persistence.
// ABOUTME: Normalize substitutes documented defaults for absent optional fields.
package models

// Theme selects the display mode.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// AppState is the root aggregate: everything the store loads at startup
// and persists on every mutation. Workouts, measurements, and photos are
// ordered newest first.
type AppState struct {
	Workouts          []*Workout               `json:"workouts"`
	CustomExercises   []Exercise               `json:"custom_exercises"`
	ExerciseOverrides map[string]ExercisePatch `json:"exercise_overrides"`
	Measurements      []*BodyMeasurement       `json:"measurements"`
	Photos            []*ProgressPhoto         `json:"photos"`
	ActiveWorkout     *Workout                 `json:"active_workout,omitempty"`
	Theme             Theme                    `json:"theme,omitempty"`
	Profile           UserProfile              `json:"profile"`
}

// NewAppState returns an empty state with all defaults applied.
func NewAppState() *AppState {
	s := &AppState{}
	s.Normalize()
	return s
}

// Normalize fills in documented defaults for fields a stored state may
// omit: profile 175cm/75kg, empty override map, dark theme.
func (s *AppState) Normalize() {
	if s.ExerciseOverrides == nil {
		s.ExerciseOverrides = make(map[string]ExercisePatch)
	}
	if s.Profile == (UserProfile{}) {
		s.Profile = DefaultProfile()
	}
	if s.Theme == "" {
		s.Theme = ThemeDark
	}
}

// AddWorkout prepends a workout to history (newest first).
func (s *AppState) AddWorkout(w *Workout) {
	s.Workouts = append([]*Workout{w}, s.Workouts...)
}

// DeleteWorkout removes the history entry with the given ID.
func (s *AppState) DeleteWorkout(id string) bool {
	for i, w := range s.Workouts {
		if w.ID == id {
			s.Workouts = append(s.Workouts[:i], s.Workouts[i+1:]...)
			return true
		}
	}
	return false
}

// AddCustomExercise appends a user-created exercise to the library.
func (s *AppState) AddCustomExercise(ex Exercise) {
	ex.Custom = true
	s.CustomExercises = append(s.CustomExercises, ex)
}

// UpdateExercise applies a patch to an exercise. Custom entries are
// edited in place; builtin entries accumulate a stored override instead,
// keeping the seed reproducible.
func (s *AppState) UpdateExercise(id string, patch ExercisePatch) {
	for i, ex := range s.CustomExercises {
		if ex.ID == id {
			s.CustomExercises[i] = patch.Apply(ex)
			return
		}
	}
	s.ExerciseOverrides[id] = s.ExerciseOverrides[id].Merge(patch)
}

// AddMeasurement prepends a body measurement (newest first).
func (s *AppState) AddMeasurement(m *BodyMeasurement) {
	s.Measurements = append([]*BodyMeasurement{m}, s.Measurements...)
}

// AddPhoto prepends a progress photo (newest first).
func (s *AppState) AddPhoto(p *ProgressPhoto) {
	s.Photos = append([]*ProgressPhoto{p}, s.Photos...)
}

// LatestWeight returns the most recent recorded body weight, or 0.
func (s *AppState) LatestWeight() float64 {
	for _, m := range s.Measurements {
		if m.Weight != nil {
			return *m.Weight
		}
	}
	return 0
}
