package importer

import (
	"fmt"

	"github.com/openbarbell/liftlog/internal/domain"
)

// ValidatePlanSchema checks the import schema before conversion.
// Returns all validation errors found, not just the first.
func ValidatePlanSchema(schema *PlanSchema) []error {
	var errs []error

	if schema.Title == "" {
		errs = append(errs, fmt.Errorf("title is required"))
	}
	if _, err := domain.ParseRef(schema.Ref); err != nil {
		errs = append(errs, fmt.Errorf("ref: %w", err))
	}
	if schema.WorkoutType != "" && !domain.ValidWorkoutTypes[schema.WorkoutType] {
		errs = append(errs, fmt.Errorf("workout_type %q is not recognized", schema.WorkoutType))
	}
	if len(schema.Exercises) == 0 {
		errs = append(errs, fmt.Errorf("at least one exercise is required"))
	}

	for i, e := range schema.Exercises {
		if _, err := domain.ParseRef(e.Ref); err != nil {
			errs = append(errs, fmt.Errorf("exercises[%d].ref: %w", i, err))
		}
		if e.Sets <= 0 {
			errs = append(errs, fmt.Errorf("exercises[%d].sets must be positive", i))
		}
		if e.Reps < 0 {
			errs = append(errs, fmt.Errorf("exercises[%d].reps must not be negative", i))
		}
		if e.SetType != "" && !domain.ValidSetTypes[e.SetType] {
			errs = append(errs, fmt.Errorf("exercises[%d].set_type %q is not recognized", i, e.SetType))
		}
	}
	return errs
}
