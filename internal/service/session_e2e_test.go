package service

import (
	"context"
	"testing"
	"time"

	"github.com/openbarbell/liftlog/internal/domain"
	"github.com/openbarbell/liftlog/internal/repository"
	"github.com/openbarbell/liftlog/internal/session"
	"github.com/openbarbell/liftlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full wiring: machine driven against real services over in-memory
// SQLite, from plan import to persisted workout history.
func TestSessionLifecycle_EndToEnd(t *testing.T) {
	database := testutil.NewTestDB(t)
	plans := NewPlanService(repository.NewSQLitePlanRepo(database))
	publish := NewPublishService(repository.NewSQLiteWorkoutRepo(database), testutil.NewTestUoW(database))
	profiles := NewProfileService(repository.NewSQLiteProfileRepo(database))
	ctx := context.Background()

	require.NoError(t, profiles.Set(ctx, "pk", "Pat"))

	plan := testutil.NewTestPlan("Leg Day")
	require.NoError(t, repository.NewSQLitePlanRepo(database).Put(ctx, plan))

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	m := session.New(plans, profiles, publish, session.Config{MinDuration: time.Minute},
		session.WithClock(func() time.Time { return now }))

	require.NoError(t, m.Start(plan.Ref))
	require.Eventually(t, func() bool {
		return m.Snapshot().Phase == session.PhaseActive
	}, time.Second, time.Millisecond)

	for i := 1; i <= 3; i++ {
		require.NoError(t, m.CompleteSet(domain.SetRecord{
			ExerciseRef: "ex:tester:squat",
			SetNumber:   i,
			Reps:        5,
			Weight:      100,
			SetType:     domain.SetWorking,
		}))
	}
	now = now.Add(50 * time.Minute)
	require.NoError(t, m.Finish())

	snap := m.Snapshot()
	require.Equal(t, session.PhaseCompleted, snap.Phase)
	require.NotNil(t, snap.Workout)
	assert.Equal(t, "pk", snap.Workout.AuthorID)

	// The publisher persisted the hand-off.
	history, err := publish.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, snap.Workout.ID, history[0].ID)
	assert.Len(t, history[0].Sets, 3)
	assert.Equal(t, 50*time.Minute, history[0].Duration())
}

func TestSessionLifecycle_CancelLeavesNoRecord(t *testing.T) {
	database := testutil.NewTestDB(t)
	plans := NewPlanService(repository.NewSQLitePlanRepo(database))
	publish := NewPublishService(repository.NewSQLiteWorkoutRepo(database), testutil.NewTestUoW(database))
	profiles := NewProfileService(repository.NewSQLiteProfileRepo(database))
	ctx := context.Background()

	plan := testutil.NewTestPlan("Push Day")
	require.NoError(t, repository.NewSQLitePlanRepo(database).Put(ctx, plan))

	m := session.New(plans, profiles, publish, session.Config{})
	require.NoError(t, m.Start(plan.Ref))
	require.Eventually(t, func() bool {
		return m.Snapshot().Phase == session.PhaseActive
	}, time.Second, time.Millisecond)

	require.NoError(t, m.CompleteSet(testutil.NewTestSet("ex:tester:squat", 1, 5, 100)))
	require.NoError(t, m.Cancel())

	history, err := publish.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}
