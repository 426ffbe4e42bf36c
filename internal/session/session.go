// ABOUTME: Session engine owning the single active workout and its commit
// ABOUTME: into history. All mutations no-op without an active session.
package session

import (
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// Mode distinguishes live tracking from retroactive entry. The two differ
// only in the session name they seed.
type Mode string

const (
	ModeLive   Mode = "live"
	ModeLogged Mode = "logged"
)

func (m Mode) sessionName() string {
	if m == ModeLogged {
		return "Logged Session"
	}
	return "Active Session"
}

// Effect is a side effect the presentation layer must perform after a
// mutation. The engine itself stays free of timers and async concerns.
type Effect interface{ isEffect() }

// StartRestTimer asks the presentation layer to run a rest countdown.
// Emitted when a set flips from incomplete to completed.
type StartRestTimer struct {
	Seconds int
}

func (StartRestTimer) isEffect() {}

// Engine is the sole owner of the active-workout slot in AppState. All
// operations are synchronous and infallible; unmet preconditions (no
// active session, bad index) result in a silent no-op.
type Engine struct {
	state *models.AppState
}

// NewEngine wraps the given state. The engine mutates only the
// ActiveWorkout slot and, on Finish, the workout history.
func NewEngine(state *models.AppState) *Engine {
	return &Engine{state: state}
}

// Active returns the in-progress workout, or nil.
func (e *Engine) Active() *models.Workout {
	return e.state.ActiveWorkout
}

// Start begins a new session, replacing any in-progress one.
func (e *Engine) Start(mode Mode) *models.Workout {
	w := models.NewWorkout(mode.sessionName())
	e.state.ActiveWorkout = w
	return w
}

// AddExercise appends a performed exercise with one default set
// (10 reps, 0 kg, 60 s rest, Working, not completed).
func (e *Engine) AddExercise(exerciseID string) {
	w := e.state.ActiveWorkout
	if w == nil {
		return
	}
	w.Exercises = append(w.Exercises, models.NewPerformedExercise(exerciseID))
}

// UpdateSet applies a patch to the addressed set. A false-to-true flip of
// Completed yields a StartRestTimer effect carrying the set's configured
// rest duration.
func (e *Engine) UpdateSet(exerciseIndex, setIndex int, patch models.SetPatch) []Effect {
	w := e.state.ActiveWorkout
	if w == nil || exerciseIndex < 0 || exerciseIndex >= len(w.Exercises) {
		return nil
	}
	sets := w.Exercises[exerciseIndex].Sets
	if setIndex < 0 || setIndex >= len(sets) {
		return nil
	}

	before := sets[setIndex]
	after := patch.Apply(before)
	sets[setIndex] = after

	if !before.Completed && after.Completed {
		return []Effect{StartRestTimer{Seconds: after.RestTime}}
	}
	return nil
}

// AddSet appends a copy of the exercise's last set (fresh ID, completed
// cleared) so the same weight and reps repeat quickly.
func (e *Engine) AddSet(exerciseIndex int) {
	w := e.state.ActiveWorkout
	if w == nil || exerciseIndex < 0 || exerciseIndex >= len(w.Exercises) {
		return
	}
	sets := w.Exercises[exerciseIndex].Sets
	if len(sets) == 0 {
		return
	}
	w.Exercises[exerciseIndex].Sets = append(sets, sets[len(sets)-1].Clone())
}

// CloneSet inserts a copy of the addressed set immediately after it,
// for drop-set variants mid-sequence.
func (e *Engine) CloneSet(exerciseIndex, setIndex int) {
	w := e.state.ActiveWorkout
	if w == nil || exerciseIndex < 0 || exerciseIndex >= len(w.Exercises) {
		return
	}
	sets := w.Exercises[exerciseIndex].Sets
	if setIndex < 0 || setIndex >= len(sets) {
		return
	}
	clone := sets[setIndex].Clone()
	out := make([]models.WorkoutSet, 0, len(sets)+1)
	out = append(out, sets[:setIndex+1]...)
	out = append(out, clone)
	out = append(out, sets[setIndex+1:]...)
	w.Exercises[exerciseIndex].Sets = out
}

// RemoveExercise deletes the addressed performed exercise.
func (e *Engine) RemoveExercise(exerciseIndex int) {
	w := e.state.ActiveWorkout
	if w == nil || exerciseIndex < 0 || exerciseIndex >= len(w.Exercises) {
		return
	}
	w.Exercises = append(w.Exercises[:exerciseIndex], w.Exercises[exerciseIndex+1:]...)
}

// Rename sets the active workout's display name.
func (e *Engine) Rename(name string) {
	if w := e.state.ActiveWorkout; w != nil {
		w.Name = name
	}
}

// Reschedule sets the active workout's date.
func (e *Engine) Reschedule(t time.Time) {
	if w := e.state.ActiveWorkout; w != nil {
		w.Date = t
	}
}

// Discard abandons the active session without committing anything.
func (e *Engine) Discard() {
	e.state.ActiveWorkout = nil
}

// Finish commits the active session to history. Each exercise keeps only
// its completed sets; exercises left empty are dropped. A session with no
// completed work is discarded without touching history. The active slot
// clears either way. Returns the committed workout, or nil.
func (e *Engine) Finish() *models.Workout {
	w := e.state.ActiveWorkout
	if w == nil {
		return nil
	}
	e.state.ActiveWorkout = nil

	var kept []models.PerformedExercise
	for _, pe := range w.Exercises {
		completed := pe.CompletedSets()
		if len(completed) == 0 {
			continue
		}
		pe.Sets = completed
		kept = append(kept, pe)
	}
	if len(kept) == 0 {
		return nil
	}

	w.Exercises = kept
	e.state.AddWorkout(w)
	return w
}
