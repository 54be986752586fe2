package session

import (
	"time"

	"github.com/openbarbell/liftlog/internal/domain"
)

// LedgerSummary is the snapshot projection of the set ledger.
type LedgerSummary struct {
	TotalSets   int
	TotalReps   int
	TotalVolume float64
	AvgRPE      float64
	RPEKnown    bool
}

// Snapshot is a read-only projection of the machine's state, rebuilt on
// every read. Presentation surfaces render from snapshots and dispatch
// commands; they never hold references into machine internals.
type Snapshot struct {
	Phase   Phase
	Mode    Mode
	Elapsed time.Duration
	Summary LedgerSummary

	// PlanTitle and Exercises are set while a plan is loaded.
	PlanTitle      string
	Exercises      []domain.PlannedExercise
	ActiveExercise int

	// Sets is the display-ordered copy of the ledger.
	Sets []domain.SetRecord

	// Err carries the most recent recoverable error message. It is
	// cleared by the next successfully processed event.
	Err string

	// Workout is non-nil only in the completed phase.
	Workout *domain.CompletedWorkout
}
