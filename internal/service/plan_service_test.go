package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/openbarbell/liftlog/internal/repository"
	"github.com/openbarbell/liftlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validPlanYAML = `
ref: "plan:pk:leg-day"
title: Leg Day
workout_type: strength
exercises:
  - ref: "ex:pk:squat"
    name: Squat
    sets: 3
    reps: 5
    weight: 100
`

func TestPlanService_ImportAndResolve(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPlanService(repository.NewSQLitePlanRepo(database))
	ctx := context.Background()

	plan, err := svc.Import(ctx, writePlanFile(t, validPlanYAML))
	require.NoError(t, err)
	assert.Equal(t, "plan:pk:leg-day", plan.Ref)

	got, err := svc.ResolvePlan(ctx, "plan:pk:leg-day")
	require.NoError(t, err)
	assert.Equal(t, "Leg Day", got.Title)

	// Wrapped reference resolves to the same plan.
	wrapped, err := svc.ResolvePlan(ctx, "plan:pk:plan:pk:leg-day")
	require.NoError(t, err)
	assert.Equal(t, got.Ref, wrapped.Ref)
}

func TestPlanService_ImportRejectsInvalidFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPlanService(repository.NewSQLitePlanRepo(database))

	_, err := svc.Import(context.Background(), writePlanFile(t, "title: Nameless\nexercises: []\n"))
	require.Error(t, err)

	plans, listErr := svc.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, plans, "a rejected import must not store anything")
}

func TestPlanService_ResolveMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPlanService(repository.NewSQLitePlanRepo(database))

	_, err := svc.ResolvePlan(context.Background(), "plan:pk:nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPlanService_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewPlanService(repository.NewSQLitePlanRepo(database))
	ctx := context.Background()

	_, err := svc.Import(ctx, writePlanFile(t, validPlanYAML))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, "plan:pk:leg-day"))

	_, err = svc.ResolvePlan(ctx, "plan:pk:leg-day")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
