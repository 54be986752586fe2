package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/openbarbell/liftlog/internal/domain"
)

var testSlugCounter atomic.Int64

// PlanOption customizes a test plan.
type PlanOption func(*domain.WorkoutPlan)

func WithWorkoutType(t domain.WorkoutType) PlanOption {
	return func(p *domain.WorkoutPlan) {
		p.WorkoutType = t
	}
}

func WithExercises(exercises ...domain.PlannedExercise) PlanOption {
	return func(p *domain.WorkoutPlan) {
		p.Exercises = exercises
	}
}

// NewTestPlan builds a plan with a unique reference and one default
// exercise, so appends against it are valid out of the box.
func NewTestPlan(title string, opts ...PlanOption) *domain.WorkoutPlan {
	n := testSlugCounter.Add(1)
	p := &domain.WorkoutPlan{
		Ref:         fmt.Sprintf("plan:tester:%s-%d", slugify(title), n),
		Title:       title,
		AuthorID:    "tester",
		WorkoutType: domain.WorkoutGeneral,
		Exercises: []domain.PlannedExercise{
			{ExerciseRef: "ex:tester:squat", Name: "Squat", TargetSets: 3, TargetReps: 5, TargetWeight: 100, SetType: domain.SetWorking},
		},
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetOption customizes a test set record.
type SetOption func(*domain.SetRecord)

func WithRPE(v float64) SetOption {
	return func(s *domain.SetRecord) {
		s.RPE = &v
	}
}

func WithAssisted() SetOption {
	return func(s *domain.SetRecord) {
		s.Assisted = true
	}
}

// NewTestSet builds a valid working set.
func NewTestSet(exerciseRef string, setNumber, reps int, weight float64, opts ...SetOption) domain.SetRecord {
	s := domain.SetRecord{
		ExerciseRef: exerciseRef,
		SetNumber:   setNumber,
		Reps:        reps,
		Weight:      weight,
		SetType:     domain.SetWorking,
		CompletedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTestWorkout builds a completed workout with the given sets.
func NewTestWorkout(title string, sets ...domain.SetRecord) *domain.CompletedWorkout {
	start := time.Now().UTC().Add(-time.Hour)
	return &domain.CompletedWorkout{
		ID:          uuid.New().String(),
		Title:       title,
		AuthorID:    "tester",
		WorkoutType: domain.WorkoutGeneral,
		PlanRef:     "plan:tester:fixture",
		StartTime:   start,
		EndTime:     start.Add(45 * time.Minute),
		Sets:        sets,
	}
}

func slugify(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		default:
			out = append(out, '-')
		}
	}
	return string(out)
}
