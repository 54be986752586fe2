package service

import (
	"context"

	"github.com/openbarbell/liftlog/internal/domain"
)

// PlanService is the plan-store collaborator: it resolves immutable
// plans by reference and manages the local plan library.
type PlanService interface {
	ResolvePlan(ctx context.Context, ref string) (*domain.WorkoutPlan, error)
	Import(ctx context.Context, filePath string) (*domain.WorkoutPlan, error)
	List(ctx context.Context) ([]*domain.WorkoutPlan, error)
	Delete(ctx context.Context, ref string) error
}

// PublishService accepts finalized workout records. Persistence is
// transactional: the workout row and its set rows commit together.
type PublishService interface {
	Publish(ctx context.Context, w *domain.CompletedWorkout) error
	GetByID(ctx context.Context, id string) (*domain.CompletedWorkout, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.CompletedWorkout, error)
}

// ProfileService is the identity collaborator.
type ProfileService interface {
	CurrentUserID(ctx context.Context) (string, error)
	Get(ctx context.Context) (*domain.UserProfile, error)
	Set(ctx context.Context, userID, displayName string) error
}
