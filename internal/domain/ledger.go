package domain

import (
	"sort"
	"time"
)

// SetRecord is one completed set. Records are created only by
// SetLedger.Append and never mutated afterwards.
type SetRecord struct {
	ExerciseRef string
	SetNumber   int
	Reps        int
	Weight      float64
	RPE         *float64
	Assisted    bool // negative weight is legal only for assisted sets
	SetType     SetType
	CompletedAt time.Time
}

// SetLedger is the append-only record of completed sets for one session.
// It has value semantics: Append returns a new ledger, so snapshots
// handed to presentation code can never observe later mutation.
type SetLedger struct {
	entries []SetRecord
}

// Append validates rec and returns a new ledger containing it.
// On rejection the original ledger is returned unchanged alongside
// a *ValidationError.
func (l SetLedger) Append(rec SetRecord) (SetLedger, error) {
	if rec.SetNumber <= 0 {
		return l, &ValidationError{Field: "setNumber", Reason: "must be positive"}
	}
	if rec.Reps < 0 {
		return l, &ValidationError{Field: "reps", Reason: "must not be negative"}
	}
	if rec.Weight < 0 && !rec.Assisted {
		return l, &ValidationError{Field: "weight", Reason: "negative weight requires an assisted set"}
	}
	entries := make([]SetRecord, len(l.entries), len(l.entries)+1)
	copy(entries, l.entries)
	return SetLedger{entries: append(entries, rec)}, nil
}

// Len returns the number of recorded sets.
func (l SetLedger) Len() int { return len(l.entries) }

// Entries returns the records in insertion order. The slice is a copy.
func (l SetLedger) Entries() []SetRecord {
	out := make([]SetRecord, len(l.entries))
	copy(out, l.entries)
	return out
}

// BySetNumber returns the records ordered for display: exercises in
// first-appearance order, each exercise's sets in ascending set number.
func (l SetLedger) BySetNumber() []SetRecord {
	appearance := make(map[string]int)
	for _, rec := range l.entries {
		key := NormalizeRef(rec.ExerciseRef)
		if _, seen := appearance[key]; !seen {
			appearance[key] = len(appearance)
		}
	}
	out := l.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		a := appearance[NormalizeRef(out[i].ExerciseRef)]
		b := appearance[NormalizeRef(out[j].ExerciseRef)]
		if a != b {
			return a < b
		}
		return out[i].SetNumber < out[j].SetNumber
	})
	return out
}

// ByCompletedAt returns the records ordered for audit, by completion time.
func (l SetLedger) ByCompletedAt() []SetRecord {
	out := l.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedAt.Before(out[j].CompletedAt)
	})
	return out
}

// ExerciseStats are per-exercise aggregates.
type ExerciseStats struct {
	Sets   int
	Reps   int
	Volume float64
}

// LedgerStats are whole-session aggregates. AvgRPE is meaningful only
// when RPEKnown is true; a ledger with no rated sets has no average,
// which is distinct from an average of zero.
type LedgerStats struct {
	TotalSets   int
	TotalReps   int
	TotalVolume float64
	AvgRPE      float64
	RPEKnown    bool
	PerExercise map[string]ExerciseStats
}

// Aggregate computes session totals. Volume counts weight*reps only for
// sets with positive weight; bodyweight sets still count toward set and
// rep totals. The per-exercise map is keyed by normalized reference.
func (l SetLedger) Aggregate() LedgerStats {
	stats := LedgerStats{PerExercise: make(map[string]ExerciseStats)}
	var rpeSum float64
	var rpeCount int
	for _, rec := range l.entries {
		stats.TotalSets++
		stats.TotalReps += rec.Reps

		key := NormalizeRef(rec.ExerciseRef)
		per := stats.PerExercise[key]
		per.Sets++
		per.Reps += rec.Reps
		if rec.Weight > 0 {
			vol := rec.Weight * float64(rec.Reps)
			stats.TotalVolume += vol
			per.Volume += vol
		}
		stats.PerExercise[key] = per

		if rec.RPE != nil && *rec.RPE > 0 {
			rpeSum += *rec.RPE
			rpeCount++
		}
	}
	if rpeCount > 0 {
		stats.AvgRPE = rpeSum / float64(rpeCount)
		stats.RPEKnown = true
	}
	return stats
}

// GroupByExercise groups records by normalized exercise reference, so a
// wrapped and an unwrapped reference to the same exercise land in the
// same group. Within a group insertion order is preserved.
func (l SetLedger) GroupByExercise() map[string][]SetRecord {
	groups := make(map[string][]SetRecord)
	for _, rec := range l.entries {
		key := NormalizeRef(rec.ExerciseRef)
		groups[key] = append(groups[key], rec)
	}
	return groups
}
