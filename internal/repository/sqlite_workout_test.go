package repository

import (
	"context"
	"testing"

	"github.com/openbarbell/liftlog/internal/domain"
	"github.com/openbarbell/liftlog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteWorkoutRepo(database)
	ctx := context.Background()

	w := testutil.NewTestWorkout("Leg Day",
		testutil.NewTestSet("ex:pk:squat", 1, 5, 100, testutil.WithRPE(8)),
		testutil.NewTestSet("ex:pk:squat", 2, 5, 100),
		testutil.NewTestSet("ex:pk:pullup", 1, 8, -20, testutil.WithAssisted()),
	)
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.Title, got.Title)
	assert.Equal(t, w.AuthorID, got.AuthorID)
	require.Len(t, got.Sets, 3)
	require.NotNil(t, got.Sets[0].RPE)
	assert.Equal(t, 8.0, *got.Sets[0].RPE)
	assert.Nil(t, got.Sets[1].RPE)
	assert.True(t, got.Sets[2].Assisted)
	assert.Equal(t, -20.0, got.Sets[2].Weight)
}

func TestWorkoutRepo_SetsKeepInsertionOrder(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteWorkoutRepo(database)
	ctx := context.Background()

	// Set numbers deliberately out of order; seq preserves arrival order.
	w := testutil.NewTestWorkout("Bench",
		testutil.NewTestSet("ex:pk:bench", 3, 5, 80),
		testutil.NewTestSet("ex:pk:bench", 1, 5, 80),
		testutil.NewTestSet("ex:pk:bench", 2, 5, 80),
	)
	require.NoError(t, repo.Create(ctx, w))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, got.Sets, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{got.Sets[0].SetNumber, got.Sets[1].SetNumber, got.Sets[2].SetNumber})
}

func TestWorkoutRepo_ListRecent(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteWorkoutRepo(database)
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		w := testutil.NewTestWorkout(title, testutil.NewTestSet("ex:t:row", 1, 10, 60))
		require.NoError(t, repo.Create(ctx, w))
	}

	got, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, w := range got {
		assert.Len(t, w.Sets, 1, "listing hydrates sets")
	}
}

func TestWorkoutRepo_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteWorkoutRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

var testutilProfile = domain.UserProfile{UserID: "user-1", DisplayName: "Pat"}

func TestProfileRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(database)
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Upsert(ctx, &testutilProfile))
	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "Pat", got.DisplayName)

	// Upsert replaces rather than duplicates.
	updated := testutilProfile
	updated.DisplayName = "Pat K."
	require.NoError(t, repo.Upsert(ctx, &updated))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Pat K.", got.DisplayName)
}
