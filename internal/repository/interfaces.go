package repository

import (
	"context"

	"github.com/openbarbell/liftlog/internal/domain"
)

// PlanRepo is the plan-store collaborator: plans are immutable templates
// keyed by their canonical reference.
type PlanRepo interface {
	Put(ctx context.Context, p *domain.WorkoutPlan) error
	GetByRef(ctx context.Context, ref string) (*domain.WorkoutPlan, error)
	List(ctx context.Context) ([]*domain.WorkoutPlan, error)
	Delete(ctx context.Context, ref string) error
}

// WorkoutRepo persists finalized workout records and their sets.
type WorkoutRepo interface {
	Create(ctx context.Context, w *domain.CompletedWorkout) error
	GetByID(ctx context.Context, id string) (*domain.CompletedWorkout, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.CompletedWorkout, error)
}

// ProfileRepo stores the single local user profile.
type ProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
}
