package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/openbarbell/liftlog/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "BW", FormatWeight(0))
	assert.Equal(t, "100kg", FormatWeight(100))
	assert.Equal(t, "102.5kg", FormatWeight(102.5))
	assert.Equal(t, "-30kg", FormatWeight(-30))
}

func TestFormatVolume(t *testing.T) {
	assert.Equal(t, "0kg", FormatVolume(0))
	assert.Equal(t, "950kg", FormatVolume(950))
	assert.Equal(t, "12,400kg", FormatVolume(12400.5))
	assert.Equal(t, "1,000,000kg", FormatVolume(1e6))
}

func TestClock(t *testing.T) {
	assert.Equal(t, "00:00", Clock(0))
	assert.Equal(t, "00:45", Clock(45*time.Second))
	assert.Equal(t, "12:03", Clock(12*time.Minute+3*time.Second))
	assert.Equal(t, "1:02:05", Clock(time.Hour+2*time.Minute+5*time.Second))
	assert.Equal(t, "00:00", Clock(-time.Second))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "30s", FormatDuration(30*time.Second))
	assert.Equal(t, "45m", FormatDuration(45*time.Minute))
	assert.Equal(t, "1h 5m", FormatDuration(65*time.Minute))
	assert.Equal(t, "2h", FormatDuration(2*time.Hour))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"A", "LONGHEADER"},
		[][]string{{"wide-cell", "x"}, {"y", "z"}},
	)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "LONGHEADER")
	assert.Contains(t, lines[2], "wide-cell")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestWorkoutDetail(t *testing.T) {
	started := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	rpe := 8.0
	w := &domain.CompletedWorkout{
		ID:          "w1",
		Title:       "Leg Day",
		WorkoutType: domain.WorkoutStrength,
		PlanRef:     "plan:coach:leg-day",
		StartTime:   started,
		EndTime:     started.Add(50 * time.Minute),
		Sets: []domain.SetRecord{
			{ExerciseRef: "exercise:coach:back-squat", SetNumber: 1, Reps: 5, Weight: 100, RPE: &rpe, SetType: domain.SetWorking, CompletedAt: started.Add(5 * time.Minute)},
			{ExerciseRef: "exercise:coach:back-squat", SetNumber: 2, Reps: 5, Weight: 100, SetType: domain.SetWorking, CompletedAt: started.Add(10 * time.Minute)},
		},
	}

	out := WorkoutDetail(w)
	assert.Contains(t, out, "Leg Day")
	assert.Contains(t, out, "back-squat")
	assert.Contains(t, out, "100kg")
	assert.Contains(t, out, "2 sets")
	assert.Contains(t, out, "10 reps")
	assert.Contains(t, out, "1,000kg volume")
	assert.Contains(t, out, "avg RPE 8.0")
}

func TestPlanDetail(t *testing.T) {
	p := &domain.WorkoutPlan{
		Ref:         "plan:coach:push-a",
		Title:       "Push A",
		WorkoutType: domain.WorkoutHypertrophy,
		Exercises: []domain.PlannedExercise{
			{ExerciseRef: "exercise:coach:bench", Name: "Bench Press", TargetSets: 4, TargetReps: 8, TargetWeight: 80, SetType: domain.SetWorking},
		},
	}

	out := PlanDetail(p)
	assert.Contains(t, out, "Push A")
	assert.Contains(t, out, "plan:coach:push-a")
	assert.Contains(t, out, "Bench Press")
	assert.Contains(t, out, "80kg")
}
