package domain

import (
	"fmt"
	"strings"
	"time"
)

// CompletedWorkout is the terminal, immutable record of a finished
// session. It is created exactly once per successful finalization and
// is read-only thereafter.
type CompletedWorkout struct {
	ID          string
	Title       string
	AuthorID    string
	WorkoutType WorkoutType
	PlanRef     string
	StartTime   time.Time
	EndTime     time.Time
	Sets        []SetRecord
}

// Duration returns the wall-clock span of the workout.
func (w *CompletedWorkout) Duration() time.Duration {
	return w.EndTime.Sub(w.StartTime)
}

// Summary renders a human-readable recap of the workout.
func (w *CompletedWorkout) Summary() string {
	var ledger SetLedger
	for _, s := range w.Sets {
		ledger, _ = ledger.Append(s)
	}
	stats := ledger.Aggregate()

	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s\n", w.Title, formatDuration(w.Duration()))
	fmt.Fprintf(&b, "%d sets, %d reps, %.0f volume\n", stats.TotalSets, stats.TotalReps, stats.TotalVolume)
	if stats.RPEKnown {
		fmt.Fprintf(&b, "avg RPE %.1f\n", stats.AvgRPE)
	}
	// Exercises print in first-appearance order, not map order.
	var order []string
	seen := make(map[string]bool)
	for _, s := range w.Sets {
		key := NormalizeRef(s.ExerciseRef)
		if !seen[key] {
			seen[key] = true
			order = append(order, key)
		}
	}
	for _, ref := range order {
		per := stats.PerExercise[ref]
		fmt.Fprintf(&b, "  %s: %d sets, %d reps", refSlug(ref), per.Sets, per.Reps)
		if per.Volume > 0 {
			fmt.Fprintf(&b, ", %.0f volume", per.Volume)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// refSlug extracts the slug from a serialized reference for display.
func refSlug(ref string) string {
	if r, err := ParseRef(ref); err == nil {
		return r.Slug
	}
	return ref
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	if h > 0 {
		return fmt.Sprintf("%dh%02dm", h, m)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
