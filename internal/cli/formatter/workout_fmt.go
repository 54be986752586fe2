package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/openbarbell/liftlog/internal/domain"
)

// PlanDetail renders a workout plan with its exercise table.
func PlanDetail(p *domain.WorkoutPlan) string {
	var b strings.Builder

	b.WriteString(Bold(p.Title) + "  " + WorkoutTypeBadge(p.WorkoutType) + "\n")
	b.WriteString(Dim(p.Ref) + "\n\n")

	headers := []string{"EXERCISE", "SETS", "REPS", "WEIGHT", "RPE", "TYPE"}
	rows := make([][]string, 0, len(p.Exercises))
	for _, ex := range p.Exercises {
		rows = append(rows, []string{
			StyleFg.Render(ex.Name),
			strconv.Itoa(ex.TargetSets),
			strconv.Itoa(ex.TargetReps),
			FormatWeight(ex.TargetWeight),
			FormatRPE(ex.RPEHint),
			SetTypeBadge(ex.SetType),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return b.String()
}

// WorkoutDetail renders a completed workout with per-set and per-exercise
// breakdowns. Sets appear in display order, grouped by exercise.
func WorkoutDetail(w *domain.CompletedWorkout) string {
	var b strings.Builder

	b.WriteString(Bold(w.Title) + "  " + WorkoutTypeBadge(w.WorkoutType) + "\n")
	b.WriteString(Dim(fmt.Sprintf("%s · %s · %s",
		HumanDate(w.StartTime), FormatDuration(w.Duration()), w.PlanRef)) + "\n\n")

	ledger := domain.SetLedger{}
	for _, s := range w.Sets {
		ledger, _ = ledger.Append(s)
	}

	headers := []string{"EXERCISE", "SET", "REPS", "WEIGHT", "RPE", "TYPE"}
	rows := make([][]string, 0, len(w.Sets))
	for _, s := range ledger.BySetNumber() {
		rows = append(rows, []string{
			StyleFg.Render(exerciseLabel(s.ExerciseRef)),
			strconv.Itoa(s.SetNumber),
			strconv.Itoa(s.Reps),
			FormatWeight(s.Weight),
			FormatRPE(s.RPE),
			SetTypeBadge(s.SetType),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(StatsLine(ledger.Aggregate()))

	return b.String()
}

// StatsLine renders aggregate ledger stats as a single summary line.
func StatsLine(stats domain.LedgerStats) string {
	line := fmt.Sprintf("%d sets · %d reps · %s volume",
		stats.TotalSets, stats.TotalReps, FormatVolume(stats.TotalVolume))
	if stats.RPEKnown {
		line += fmt.Sprintf(" · avg RPE %.1f", stats.AvgRPE)
	}
	return StyleGreen.Render(line)
}

// exerciseLabel shows the slug portion of an exercise reference.
func exerciseLabel(ref string) string {
	r, err := domain.ParseRef(ref)
	if err != nil {
		return ref
	}
	return r.Slug
}
