// ABOUTME: Pure derivations over committed workout history: weekly volume,
// ABOUTME: personal records, volume trend, top lifts, calendar grouping.
package analytics

import (
	"sort"
	"time"

	"github.com/harperreed/fittrack/internal/catalog"
	"github.com/harperreed/fittrack/internal/models"
)

// GroupVolume is one muscle group's volume over the trailing week.
type GroupVolume struct {
	Group  models.MuscleGroup
	Volume float64
}

// WeeklyVolume sums weight x reps over completed sets of workouts dated
// within the trailing seven days (inclusive boundary), bucketed by the
// muscle group the set's exercise resolves to. Unresolvable exercise IDs
// are skipped; zero-volume groups are omitted. Sorted by volume
// descending, ties stable in muscle-group enumeration order.
func WeeklyVolume(workouts []*models.Workout, resolved []models.Exercise, now time.Time) []GroupVolume {
	cutoff := now.AddDate(0, 0, -7)

	volumes := make(map[models.MuscleGroup]float64)
	for _, w := range workouts {
		if w.Date.Before(cutoff) {
			continue
		}
		for _, pe := range w.Exercises {
			ex, ok := catalog.FindByID(resolved, pe.ExerciseID)
			if !ok {
				continue
			}
			for _, s := range pe.Sets {
				if s.Completed {
					volumes[ex.Category] += s.Volume()
				}
			}
		}
	}

	var out []GroupVolume
	for _, mg := range models.AllMuscleGroups {
		if v := volumes[mg]; v > 0 {
			out = append(out, GroupVolume{Group: mg, Volume: v})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Volume > out[j].Volume
	})
	return out
}

// Record is the best completed set ever logged for one exercise.
type Record struct {
	ExerciseID string
	Weight     float64
	Reps       int
	Date       time.Time
}

// beats orders records by weight descending, then reps descending.
func (r Record) beats(other Record) bool {
	if r.Weight != other.Weight {
		return r.Weight > other.Weight
	}
	return r.Reps > other.Reps
}

// PersonalRecords finds the best completed set per exercise across all
// history. Only sets with completed = true and weight > 0 are eligible;
// heavier wins outright, more reps breaks ties. Each record carries the
// owning workout's date. Sorted by weight descending.
func PersonalRecords(workouts []*models.Workout) []Record {
	best := make(map[string]Record)
	var order []string

	for _, w := range workouts {
		for _, pe := range w.Exercises {
			for _, s := range pe.Sets {
				if !s.Completed || s.Weight <= 0 {
					continue
				}
				candidate := Record{
					ExerciseID: pe.ExerciseID,
					Weight:     s.Weight,
					Reps:       s.Reps,
					Date:       w.Date,
				}
				current, seen := best[pe.ExerciseID]
				if !seen {
					best[pe.ExerciseID] = candidate
					order = append(order, pe.ExerciseID)
				} else if candidate.beats(current) {
					best[pe.ExerciseID] = candidate
				}
			}
		}
	}

	out := make([]Record, 0, len(order))
	for _, id := range order {
		out = append(out, best[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight > out[j].Weight
	})
	return out
}

// NamedRecord is a personal record resolved to its display name.
type NamedRecord struct {
	Record
	Name string
}

// TopLifts returns the n heaviest personal records with exercise names
// resolved against the catalog.
func TopLifts(workouts []*models.Workout, resolved []models.Exercise, n int) []NamedRecord {
	records := PersonalRecords(workouts)
	if n > 0 && len(records) > n {
		records = records[:n]
	}
	out := make([]NamedRecord, 0, len(records))
	for _, r := range records {
		out = append(out, NamedRecord{
			Record: r,
			Name:   catalog.DisplayName(resolved, r.ExerciseID),
		})
	}
	return out
}

// VolumePoint is one workout's total volume on the trend line.
type VolumePoint struct {
	Date   time.Time
	Name   string
	Volume float64
}

// VolumeSeries produces one point per workout in chronological order
// (oldest first, the reverse of storage order). Every logged set counts
// toward the trend, completed or not; history committed through Finish
// only ever holds completed sets, so the policies coincide there.
func VolumeSeries(workouts []*models.Workout) []VolumePoint {
	out := make([]VolumePoint, 0, len(workouts))
	for i := len(workouts) - 1; i >= 0; i-- {
		w := workouts[i]
		out = append(out, VolumePoint{
			Date:   w.Date,
			Name:   w.Name,
			Volume: w.Volume(),
		})
	}
	return out
}

// DayGroup is all workouts sharing one calendar day.
type DayGroup struct {
	Day      time.Time // midnight, local time
	Workouts []*models.Workout
}

// GroupByDay buckets workouts by the day portion of their date,
// discarding time-of-day. Groups appear in first-seen order over the
// newest-first history; storage order is kept within a group.
func GroupByDay(workouts []*models.Workout) []DayGroup {
	index := make(map[time.Time]int)
	var out []DayGroup
	for _, w := range workouts {
		day := truncateToDay(w.Date)
		if i, ok := index[day]; ok {
			out[i].Workouts = append(out[i].Workouts, w)
			continue
		}
		index[day] = len(out)
		out = append(out, DayGroup{Day: day, Workouts: []*models.Workout{w}})
	}
	return out
}

// WorkoutDates returns the days-of-month (1-based) that have at least one
// workout, for calendar-cell population.
func WorkoutDates(workouts []*models.Workout, year int, month time.Month) map[int]bool {
	out := make(map[int]bool)
	for _, w := range workouts {
		d := w.Date.Local()
		if d.Year() == year && d.Month() == month {
			out[d.Day()] = true
		}
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
