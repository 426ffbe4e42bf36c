// ABOUTME: Tests for the session engine: lifecycle, set edits, commit rules.
// ABOUTME: Finish keeps completed sets only and discards empty sessions.
package session

import (
	"testing"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

func ptrInt(v int) *int           { return &v }
func ptrFloat(v float64) *float64 { return &v }
func ptrBool(v bool) *bool        { return &v }

func TestStartSessionNames(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)

	if w := engine.Start(ModeLive); w.Name != "Active Session" {
		t.Errorf("live session name = %q", w.Name)
	}
	if w := engine.Start(ModeLogged); w.Name != "Logged Session" {
		t.Errorf("logged session name = %q", w.Name)
	}
}

func TestStartReplacesActive(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)

	first := engine.Start(ModeLive)
	engine.AddExercise("b1")
	second := engine.Start(ModeLive)

	if engine.Active().ID != second.ID {
		t.Error("expected the new session to replace the old one")
	}
	if engine.Active().ID == first.ID {
		t.Error("old session survived Start")
	}
	if len(engine.Active().Exercises) != 0 {
		t.Error("replacement session inherited exercises")
	}
}

func TestAddExerciseSeedsDefaultSet(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)
	engine.Start(ModeLive)
	engine.AddExercise("b1")

	w := engine.Active()
	if len(w.Exercises) != 1 {
		t.Fatalf("got %d exercises, want 1", len(w.Exercises))
	}
	pe := w.Exercises[0]
	if pe.ExerciseID != "b1" || len(pe.Sets) != 1 {
		t.Fatalf("unexpected exercise: %+v", pe)
	}
	s := pe.Sets[0]
	if s.Reps != 10 || s.Weight != 0 || s.RestTime != 60 || s.Type != models.SetWorking || s.Completed {
		t.Errorf("default set = %+v", s)
	}
}

func TestMutationsWithoutActiveSessionNoop(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)

	engine.AddExercise("b1")
	engine.AddSet(0)
	engine.RemoveExercise(0)
	engine.Rename("x")
	if effects := engine.UpdateSet(0, 0, models.SetPatch{Reps: ptrInt(5)}); effects != nil {
		t.Error("expected no effects without a session")
	}
	if engine.Finish() != nil {
		t.Error("expected Finish to return nil without a session")
	}
	if len(state.Workouts) != 0 {
		t.Error("no-op mutations touched history")
	}
}

func TestUpdateSetEmitsRestTimerOnCompletion(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)
	engine.Start(ModeLive)
	engine.AddExercise("b1")

	effects := engine.UpdateSet(0, 0, models.SetPatch{
		Weight:    ptrFloat(140),
		Reps:      ptrInt(3),
		RestTime:  ptrInt(90),
		Completed: ptrBool(true),
	})

	if len(effects) != 1 {
		t.Fatalf("got %d effects, want 1", len(effects))
	}
	timer, ok := effects[0].(StartRestTimer)
	if !ok {
		t.Fatalf("effect = %T, want StartRestTimer", effects[0])
	}
	if timer.Seconds != 90 {
		t.Errorf("timer seconds = %d, want the set's configured rest", timer.Seconds)
	}
}

func TestUpdateSetNoTimerWhenAlreadyCompleted(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)
	engine.Start(ModeLive)
	engine.AddExercise("b1")
	engine.UpdateSet(0, 0, models.SetPatch{Completed: ptrBool(true)})

	// Editing an already-completed set must not restart the countdown.
	if effects := engine.UpdateSet(0, 0, models.SetPatch{Reps: ptrInt(8), Completed: ptrBool(true)}); effects != nil {
		t.Errorf("got effects %v, want none", effects)
	}
	// Un-completing produces nothing either.
	if effects := engine.UpdateSet(0, 0, models.SetPatch{Completed: ptrBool(false)}); effects != nil {
		t.Errorf("got effects %v on uncomplete, want none", effects)
	}
}

func TestUpdateSetOutOfRange(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)
	engine.Start(ModeLive)
	engine.AddExercise("b1")

	if effects := engine.UpdateSet(1, 0, models.SetPatch{Reps: ptrInt(5)}); effects != nil {
		t.Error("expected nil effects for bad exercise index")
	}
	if effects := engine.UpdateSet(0, 5, models.SetPatch{Reps: ptrInt(5)}); effects != nil {
		t.Error("expected nil effects for bad set index")
	}
	if engine.Active().Exercises[0].Sets[0].Reps != 10 {
		t.Error("out-of-range update mutated a set")
	}
}

func TestAddSetCopiesLast(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)
	engine.Start(ModeLive)
	engine.AddExercise("b1")
	engine.UpdateSet(0, 0, models.SetPatch{Weight: ptrFloat(100), Reps: ptrInt(5), Completed: ptrBool(true)})

	engine.AddSet(0)

	sets := engine.Active().Exercises[0].Sets
	if len(sets) != 2 {
		t.Fatalf("got %d sets, want 2", len(sets))
	}
	added := sets[1]
	if added.Weight != 100 || added.Reps != 5 {
		t.Errorf("added set = %+v, want last set's numbers", added)
	}
	if added.Completed {
		t.Error("added set should start incomplete")
	}
	if added.ID == sets[0].ID {
		t.Error("added set reused the source ID")
	}
}

func TestCloneSetInsertsAfterSource(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)
	engine.Start(ModeLive)
	engine.AddExercise("b1")
	engine.UpdateSet(0, 0, models.SetPatch{Weight: ptrFloat(100)})
	engine.AddSet(0)
	engine.UpdateSet(0, 1, models.SetPatch{Weight: ptrFloat(80)})

	engine.CloneSet(0, 0)

	sets := engine.Active().Exercises[0].Sets
	if len(sets) != 3 {
		t.Fatalf("got %d sets, want 3", len(sets))
	}
	if sets[1].Weight != 100 {
		t.Errorf("clone at position 1 has weight %v, want 100", sets[1].Weight)
	}
	if sets[2].Weight != 80 {
		t.Errorf("original second set moved: weight %v, want 80", sets[2].Weight)
	}
}

func TestRemoveExercise(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)
	engine.Start(ModeLive)
	engine.AddExercise("b1")
	engine.AddExercise("c1")

	engine.RemoveExercise(0)

	w := engine.Active()
	if len(w.Exercises) != 1 || w.Exercises[0].ExerciseID != "c1" {
		t.Errorf("exercises after remove = %+v", w.Exercises)
	}
}

func TestRenameAndReschedule(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)
	engine.Start(ModeLive)

	engine.Rename("Push Day")
	when := time.Date(2026, 8, 20, 18, 30, 0, 0, time.Local)
	engine.Reschedule(when)

	w := engine.Active()
	if w.Name != "Push Day" {
		t.Errorf("Name = %q", w.Name)
	}
	if !w.Date.Equal(when) {
		t.Errorf("Date = %v, want %v", w.Date, when)
	}
}

func TestFinishKeepsOnlyCompletedSets(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)
	engine.Start(ModeLive)

	engine.AddExercise("b1")
	engine.UpdateSet(0, 0, models.SetPatch{Weight: ptrFloat(140), Reps: ptrInt(3), Completed: ptrBool(true)})
	engine.AddSet(0) // second set never completed

	engine.AddExercise("c1") // default set never completed

	committed := engine.Finish()
	if committed == nil {
		t.Fatal("expected a committed workout")
	}
	if engine.Active() != nil {
		t.Error("active slot not cleared")
	}
	if len(state.Workouts) != 1 || state.Workouts[0].ID != committed.ID {
		t.Fatal("workout not prepended to history")
	}

	if len(committed.Exercises) != 1 {
		t.Fatalf("got %d exercises, want the empty one dropped", len(committed.Exercises))
	}
	pe := committed.Exercises[0]
	if pe.ExerciseID != "b1" || len(pe.Sets) != 1 {
		t.Fatalf("committed exercise = %+v", pe)
	}
	if !pe.Sets[0].Completed || pe.Sets[0].Weight != 140 {
		t.Errorf("kept set = %+v", pe.Sets[0])
	}
}

func TestFinishDiscardsEmptySession(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)
	engine.Start(ModeLive)
	engine.AddExercise("b1") // nothing completed

	if committed := engine.Finish(); committed != nil {
		t.Errorf("got %+v, want nil for a session with no completed work", committed)
	}
	if len(state.Workouts) != 0 {
		t.Error("discarded session reached history")
	}
	if engine.Active() != nil {
		t.Error("active slot not cleared on discard")
	}
}

func TestFinishDropsUncompletedAfterToggle(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)
	engine.Start(ModeLive)
	engine.AddExercise("b1")
	engine.UpdateSet(0, 0, models.SetPatch{Completed: ptrBool(true)})
	engine.UpdateSet(0, 0, models.SetPatch{Completed: ptrBool(false)})

	if committed := engine.Finish(); committed != nil {
		t.Error("a toggled-back set should not commit")
	}
}

func TestDiscard(t *testing.T) {
	state := models.NewAppState()
	engine := NewEngine(state)
	engine.Start(ModeLive)
	engine.AddExercise("b1")
	engine.UpdateSet(0, 0, models.SetPatch{Completed: ptrBool(true)})

	engine.Discard()

	if engine.Active() != nil {
		t.Error("active slot survived Discard")
	}
	if len(state.Workouts) != 0 {
		t.Error("Discard committed to history")
	}
}
