package domain

import "time"

// PlannedExercise is one entry in a workout plan's ordered sequence.
type PlannedExercise struct {
	ExerciseRef  string // canonical serialized PlanReference
	Name         string
	TargetSets   int
	TargetReps   int
	TargetWeight float64
	RPEHint      *float64
	SetType      SetType
}

// WorkoutPlan is an ordered template a session is started from.
// Immutable once loaded; the session never writes back to it.
type WorkoutPlan struct {
	Ref         string // canonical serialized PlanReference
	Title       string
	AuthorID    string
	WorkoutType WorkoutType
	Exercises   []PlannedExercise
	CreatedAt   time.Time
}

// FindExercise returns the planned entry matching ref, comparing through
// the normalizer, and whether one was found.
func (p *WorkoutPlan) FindExercise(ref string) (PlannedExercise, bool) {
	for _, e := range p.Exercises {
		if RefEqual(e.ExerciseRef, ref) {
			return e, true
		}
	}
	return PlannedExercise{}, false
}
