package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openbarbell/liftlog/internal/domain"
)

// finalize validates the session against its plan and constructs the
// immutable completed-workout record. minDuration guards against
// accidental finish taps; it is configuration, not business logic.
func finalize(plan *domain.WorkoutPlan, ledger domain.SetLedger, timing domain.TimingInfo, authorID string, now time.Time, minDuration time.Duration) (*domain.CompletedWorkout, error) {
	if ledger.Len() == 0 {
		return nil, &domain.ValidationError{Field: "sets", Reason: "at least one completed set is required"}
	}
	if elapsed := timing.Elapsed(now); elapsed < minDuration {
		return nil, &domain.ValidationError{
			Field:  "duration",
			Reason: fmt.Sprintf("workout lasted %s, minimum is %s", elapsed.Round(time.Second), minDuration),
		}
	}

	return &domain.CompletedWorkout{
		ID:          uuid.New().String(),
		Title:       plan.Title,
		AuthorID:    authorID,
		WorkoutType: plan.WorkoutType,
		PlanRef:     domain.NormalizeRef(plan.Ref),
		StartTime:   timing.StartTime,
		EndTime:     now,
		Sets:        ledger.Entries(),
	}, nil
}
