package repository

import (
	"context"
	"testing"

	"github.com/openbarbell/liftlog/internal/domain"
	"github.com/openbarbell/liftlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRepo_PutAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(database)
	ctx := context.Background()

	hint := 8.0
	plan := testutil.NewTestPlan("Leg Day", testutil.WithExercises(
		domain.PlannedExercise{ExerciseRef: "ex:pk:squat", Name: "Squat", TargetSets: 3, TargetReps: 5, TargetWeight: 100, RPEHint: &hint, SetType: domain.SetWorking},
		domain.PlannedExercise{ExerciseRef: "ex:pk:lunge", Name: "Lunge", TargetSets: 2, TargetReps: 12, SetType: domain.SetWarmup},
	))
	require.NoError(t, repo.Put(ctx, plan))

	got, err := repo.GetByRef(ctx, plan.Ref)
	require.NoError(t, err)
	assert.Equal(t, plan.Title, got.Title)
	require.Len(t, got.Exercises, 2)
	assert.Equal(t, "ex:pk:squat", got.Exercises[0].ExerciseRef)
	require.NotNil(t, got.Exercises[0].RPEHint)
	assert.Equal(t, 8.0, *got.Exercises[0].RPEHint)
	assert.Nil(t, got.Exercises[1].RPEHint)
	assert.Equal(t, domain.SetWarmup, got.Exercises[1].SetType)
}

func TestPlanRepo_GetByWrappedRef(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(database)
	ctx := context.Background()

	plan := testutil.NewTestPlan("Push Day")
	plan.Ref = "33402:pk:push-day"
	require.NoError(t, repo.Put(ctx, plan))

	got, err := repo.GetByRef(ctx, "33402:pk:33402:pk:push-day")
	require.NoError(t, err)
	assert.Equal(t, "33402:pk:push-day", got.Ref)
}

func TestPlanRepo_WrappedRefDoesNotDuplicateRow(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(database)
	ctx := context.Background()

	plan := testutil.NewTestPlan("Pull Day")
	plan.Ref = "33402:pk:pull-day"
	require.NoError(t, repo.Put(ctx, plan))

	wrapped := *plan
	wrapped.Ref = "33402:pk:33402:pk:pull-day"
	require.NoError(t, repo.Put(ctx, &wrapped))

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, plans, 1, "wrapped reference must upsert the canonical row")
}

func TestPlanRepo_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(database)

	_, err := repo.GetByRef(context.Background(), "plan:none:missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanRepo_DeleteCascadesExercises(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(database)
	ctx := context.Background()

	plan := testutil.NewTestPlan("Temp")
	require.NoError(t, repo.Put(ctx, plan))
	require.NoError(t, repo.Delete(ctx, plan.Ref))

	_, err := repo.GetByRef(ctx, plan.Ref)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM plan_exercises WHERE plan_ref = ?`, plan.Ref).Scan(&count))
	assert.Zero(t, count)
}
