package cron

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/openloop-cli/internal/ports"
	robfig "github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// MinInterval is the cron scheduler resolution.
const MinInterval = time.Second

var ErrIntervalTooShort = errors.New("interval shorter than one second")

// Timer arms a single "@every" entry on a running cron scheduler. A fire
// that overlaps a still running job is skipped.
type Timer struct {
	mu    sync.Mutex
	cron  *robfig.Cron
	entry robfig.EntryID
	armed bool
}

var _ ports.IntervalTimer = (*Timer)(nil)

func New(logger zerolog.Logger) *Timer {
	cronLogger := robfig.PrintfLogger(&logger)
	c := robfig.New(
		robfig.WithLogger(cronLogger),
		robfig.WithChain(robfig.Recover(cronLogger), robfig.SkipIfStillRunning(cronLogger)),
	)
	c.Start()

	return &Timer{cron: c}
}

func (t *Timer) Arm(interval time.Duration, fn func()) error {
	if interval < MinInterval {
		return fmt.Errorf("arm timer every %s: %w", interval, ErrIntervalTooShort)
	}
	if fn == nil {
		return errors.New("arm timer: nil job")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.armed {
		t.cron.Remove(t.entry)
		t.armed = false
	}

	entry, err := t.cron.AddFunc("@every "+interval.String(), fn)
	if err != nil {
		return fmt.Errorf("arm timer every %s: %w", interval, err)
	}
	t.entry = entry
	t.armed = true

	return nil
}

func (t *Timer) Disarm() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.armed {
		return
	}
	t.cron.Remove(t.entry)
	t.armed = false
}

func (t *Timer) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.armed
}

// Next reports when the armed entry fires next.
func (t *Timer) Next() (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.armed {
		return time.Time{}, false
	}
	return t.cron.Entry(t.entry).Next, true
}

// Stop disarms and stops the scheduler without waiting for a running job.
func (t *Timer) Stop() {
	t.Disarm()
	t.cron.Stop()
}
