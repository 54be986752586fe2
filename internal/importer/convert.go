package importer

import (
	"time"

	"github.com/openbarbell/liftlog/internal/domain"
)

// ToPlan converts a validated schema into an immutable domain plan.
// References are normalized so import files carrying wrapped references
// produce canonical plans.
func ToPlan(schema *PlanSchema, now time.Time) *domain.WorkoutPlan {
	plan := &domain.WorkoutPlan{
		Ref:         domain.NormalizeRef(schema.Ref),
		Title:       schema.Title,
		AuthorID:    schema.Author,
		WorkoutType: domain.WorkoutGeneral,
		CreatedAt:   now,
	}
	if schema.WorkoutType != "" {
		plan.WorkoutType = domain.WorkoutType(schema.WorkoutType)
	}
	if plan.AuthorID == "" {
		if ref, err := domain.ParseRef(plan.Ref); err == nil {
			plan.AuthorID = ref.AuthorID
		}
	}

	for _, e := range schema.Exercises {
		setType := domain.SetWorking
		if e.SetType != "" {
			setType = domain.SetType(e.SetType)
		}
		plan.Exercises = append(plan.Exercises, domain.PlannedExercise{
			ExerciseRef:  domain.NormalizeRef(e.Ref),
			Name:         e.Name,
			TargetSets:   e.Sets,
			TargetReps:   e.Reps,
			TargetWeight: e.Weight,
			RPEHint:      e.RPEHint,
			SetType:      setType,
		})
	}
	return plan
}
