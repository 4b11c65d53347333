package coop

import (
	"fmt"
	"sync/atomic"
)

// fakeClock is a manually driven Clock for deterministic tick tests. The
// counter is atomic because Wait/Idle timeout tests advance it from the
// test goroutine while the scheduler polls it from its own goroutine.
type fakeClock struct {
	t atomic.Uint64
}

func (c *fakeClock) Now() Tick { return Tick(c.t.Load()) }

func (c *fakeClock) advance(delta Tick) { c.t.Add(uint64(delta)) }

// fakeIdle records every sleep request instead of blocking, advancing the
// paired fakeClock by the requested amount.
type fakeIdle struct {
	clock *fakeClock
	slept []Tick
}

func (f *fakeIdle) Idle(ticks Tick) {
	f.slept = append(f.slept, ticks)
	f.clock.advance(ticks)
}

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Debugf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}
