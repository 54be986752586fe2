package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openbarbell/liftlog/internal/domain"
	"github.com/openbarbell/liftlog/internal/importer"
	"github.com/openbarbell/liftlog/internal/repository"
)

type planService struct {
	plans repository.PlanRepo
}

// NewPlanService creates a PlanService backed by the local plan store.
func NewPlanService(plans repository.PlanRepo) PlanService {
	return &planService{plans: plans}
}

func (s *planService) ResolvePlan(ctx context.Context, ref string) (*domain.WorkoutPlan, error) {
	return s.plans.GetByRef(ctx, ref)
}

func (s *planService) Import(ctx context.Context, filePath string) (*domain.WorkoutPlan, error) {
	schema, err := importer.LoadPlanFile(filePath)
	if err != nil {
		return nil, err
	}
	if errs := importer.ValidatePlanSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("plan file %s: %w", filePath, errors.Join(errs...))
	}

	plan := importer.ToPlan(schema, time.Now().UTC())
	if err := s.plans.Put(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) List(ctx context.Context) ([]*domain.WorkoutPlan, error) {
	return s.plans.List(ctx)
}

func (s *planService) Delete(ctx context.Context, ref string) error {
	return s.plans.Delete(ctx, ref)
}
