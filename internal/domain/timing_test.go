package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var t0 = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestElapsed_ZeroAtStart(t *testing.T) {
	info := StartTiming(t0)
	assert.Equal(t, time.Duration(0), info.Elapsed(t0))
}

func TestElapsed_ExcludesPauses(t *testing.T) {
	info := StartTiming(t0)
	info = info.Pause(t0.Add(10 * time.Minute))
	info = info.Resume(t0.Add(15 * time.Minute))

	assert.Equal(t, 20*time.Minute, info.Elapsed(t0.Add(25*time.Minute)))
}

func TestElapsed_OpenPauseCountsUpToNow(t *testing.T) {
	info := StartTiming(t0)
	info = info.Pause(t0.Add(10 * time.Minute))

	// Paused at minute 10; elapsed stays frozen at 10 minutes.
	assert.Equal(t, 10*time.Minute, info.Elapsed(t0.Add(30*time.Minute)))
}

func TestElapsed_ClampsNegative(t *testing.T) {
	info := StartTiming(t0)
	assert.Equal(t, time.Duration(0), info.Elapsed(t0.Add(-time.Minute)))
}

func TestElapsed_MonotoneForNonDecreasingNow(t *testing.T) {
	info := StartTiming(t0)
	info = info.Pause(t0.Add(5 * time.Minute))
	info = info.Resume(t0.Add(7 * time.Minute))

	prev := time.Duration(-1)
	for i := 0; i <= 20; i++ {
		now := t0.Add(time.Duration(i) * time.Minute)
		e := info.Elapsed(now)
		assert.GreaterOrEqual(t, e, prev, "elapsed must not decrease at minute %d", i)
		prev = e
	}
}

func TestPause_NoOpWhenPaused(t *testing.T) {
	info := StartTiming(t0).Pause(t0.Add(time.Minute))
	again := info.Pause(t0.Add(2 * time.Minute))
	assert.Equal(t, info, again)
}

func TestResume_NoOpWhenRunning(t *testing.T) {
	info := StartTiming(t0)
	assert.Equal(t, info, info.Resume(t0.Add(time.Minute)))
}

func TestPause_DoesNotMutateReceiver(t *testing.T) {
	info := StartTiming(t0)
	_ = info.Pause(t0.Add(time.Minute))
	assert.False(t, info.IsPaused(), "original value must be untouched")
}
