package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbarbell/liftlog/internal/db"
	"github.com/openbarbell/liftlog/internal/domain"
	"github.com/openbarbell/liftlog/internal/repository"
)

type publishService struct {
	workouts repository.WorkoutRepo
	uow      db.UnitOfWork
}

// NewPublishService creates a PublishService that persists workouts
// transactionally.
func NewPublishService(workouts repository.WorkoutRepo, uow db.UnitOfWork) PublishService {
	return &publishService{workouts: workouts, uow: uow}
}

func (s *publishService) Publish(ctx context.Context, w *domain.CompletedWorkout) error {
	// The finalized record is immutable; an ID is assigned on a copy.
	if w.ID == "" {
		stamped := *w
		stamped.ID = uuid.New().String()
		w = &stamped
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txWorkouts := repository.NewSQLiteWorkoutRepo(tx)
		return txWorkouts.Create(ctx, w)
	})
}

func (s *publishService) GetByID(ctx context.Context, id string) (*domain.CompletedWorkout, error) {
	return s.workouts.GetByID(ctx, id)
}

func (s *publishService) ListRecent(ctx context.Context, limit int) ([]*domain.CompletedWorkout, error) {
	return s.workouts.ListRecent(ctx, limit)
}
