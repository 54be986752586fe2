package domain

import "time"

// PauseInterval is one pause span. To is zero while the pause is open.
type PauseInterval struct {
	From time.Time
	To   time.Time
}

// TimingInfo tracks a session's start time and pause history. It has
// value semantics: operations return a new TimingInfo and never mutate
// the receiver. Callers supply the clock, so the type stays pure.
type TimingInfo struct {
	StartTime time.Time
	Paused    []PauseInterval
}

// StartTiming begins timing at now.
func StartTiming(now time.Time) TimingInfo {
	return TimingInfo{StartTime: now}
}

// IsPaused reports whether the last pause interval is still open.
func (t TimingInfo) IsPaused() bool {
	n := len(t.Paused)
	return n > 0 && t.Paused[n-1].To.IsZero()
}

// Pause opens a pause interval at now. No-op if already paused.
func (t TimingInfo) Pause(now time.Time) TimingInfo {
	if t.IsPaused() {
		return t
	}
	paused := make([]PauseInterval, len(t.Paused), len(t.Paused)+1)
	copy(paused, t.Paused)
	t.Paused = append(paused, PauseInterval{From: now})
	return t
}

// Resume closes the open pause interval at now. No-op if running.
func (t TimingInfo) Resume(now time.Time) TimingInfo {
	if !t.IsPaused() {
		return t
	}
	paused := make([]PauseInterval, len(t.Paused))
	copy(paused, t.Paused)
	paused[len(paused)-1].To = now
	t.Paused = paused
	return t
}

// Elapsed returns running time at now, excluding paused spans. An open
// pause counts up to now. The result is clamped to zero so a skewed
// clock can never produce a negative duration.
func (t TimingInfo) Elapsed(now time.Time) time.Duration {
	elapsed := now.Sub(t.StartTime)
	for _, p := range t.Paused {
		to := p.To
		if to.IsZero() {
			to = now
		}
		elapsed -= to.Sub(p.From)
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
