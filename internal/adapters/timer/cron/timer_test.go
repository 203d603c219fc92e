package cron

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerFiresUntilDisarmed(t *testing.T) {
	t.Parallel()

	timer := New(zerolog.Nop())
	t.Cleanup(timer.Stop)

	var fired atomic.Int32
	require.NoError(t, timer.Arm(time.Second, func() { fired.Add(1) }))
	assert.True(t, timer.Armed())

	next, ok := timer.Next()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), next, 1500*time.Millisecond)

	require.Eventually(t, func() bool { return fired.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)

	timer.Disarm()
	assert.False(t, timer.Armed())
	count := fired.Load()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, count, fired.Load())

	_, ok = timer.Next()
	assert.False(t, ok)
}

func TestTimerArmReplacesPreviousEntry(t *testing.T) {
	t.Parallel()

	timer := New(zerolog.Nop())
	t.Cleanup(timer.Stop)

	var first, second atomic.Int32
	require.NoError(t, timer.Arm(time.Hour, func() { first.Add(1) }))
	require.NoError(t, timer.Arm(time.Second, func() { second.Add(1) }))

	require.Eventually(t, func() bool { return second.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	assert.Zero(t, first.Load())
	assert.Len(t, timer.cron.Entries(), 1)
}

func TestTimerRejectsSubSecondInterval(t *testing.T) {
	t.Parallel()

	timer := New(zerolog.Nop())
	t.Cleanup(timer.Stop)

	err := timer.Arm(100*time.Millisecond, func() {})
	require.ErrorIs(t, err, ErrIntervalTooShort)
	assert.False(t, timer.Armed())

	timer.Disarm()
}

func TestTimerSkipsOverlappingRuns(t *testing.T) {
	t.Parallel()

	timer := New(zerolog.Nop())
	t.Cleanup(timer.Stop)

	var running, overlaps, runs atomic.Int32
	release := make(chan struct{})
	require.NoError(t, timer.Arm(time.Second, func() {
		if running.Add(1) > 1 {
			overlaps.Add(1)
		}
		runs.Add(1)
		<-release
		running.Add(-1)
	}))

	time.Sleep(2500 * time.Millisecond)
	timer.Disarm()
	close(release)

	assert.Equal(t, int32(1), runs.Load())
	assert.Zero(t, overlaps.Load())
}
